package lang

import "strings"

// readToken implements spec §4.3: given the already-consumed initial
// character, accumulate a maximal run of non-terminating characters,
// pushing the terminator back, and return the nonempty accumulated
// string.
func (rd *Reader) readToken(initch rune) (string, error) {
	var b strings.Builder
	b.WriteRune(initch)
	for {
		ch, err := rd.r.ReadRune()
		if err != nil {
			return "", err
		}
		if ch == eof || isWhitespace(ch) || rd.isTerminatingMacro(ch) {
			if ch != eof {
				if err := rd.r.UnreadRune(); err != nil {
					return "", err
				}
			}
			return b.String(), nil
		}
		b.WriteRune(ch)
	}
}
