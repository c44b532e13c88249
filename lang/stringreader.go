package lang

import "strings"

// readStringMacro implements spec §4.5: a string is terminated by an
// unescaped '"'; a backslash introduces one of the escapes in
// escape.go; EOF before the terminator is an error.
func readStringMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	var b strings.Builder
	for {
		ch, err := rd.r.ReadRune()
		if err != nil {
			return nil, false, err
		}
		if ch == eof {
			return nil, false, newErr(KindEOF, "EOF while reading string")
		}
		if ch == '"' {
			return b.String(), false, nil
		}
		if ch == '\\' {
			esc, err := rd.readEscapedChar()
			if err != nil {
				return nil, false, err
			}
			b.WriteRune(esc)
			continue
		}
		b.WriteRune(ch)
	}
}

// readCommentMacro implements spec §4.9's ';' binding and the '#!'
// dispatch entry (§4.14): skip to end of line, producing nothing.
func readCommentMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	if err := rd.skipLine(); err != nil {
		return nil, false, err
	}
	return nil, true, nil
}
