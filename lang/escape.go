package lang

import "strconv"

// simpleEscapes implements the single-character escape table spec
// §4.5 names: \t \r \n \\ \" \b \f.
var simpleEscapes = map[rune]rune{
	't':  '\t',
	'r':  '\r',
	'n':  '\n',
	'\\': '\\',
	'"':  '"',
	'b':  '\b',
	'f':  '\f',
}

// readEscapedChar implements spec §4.5's escape grammar for one
// backslash-introduced escape, having already consumed the backslash.
// Only the string reader (readStringMacro) uses it; character literals
// are handled separately in charreader.go.
func (rd *Reader) readEscapedChar() (rune, error) {
	ch, err := rd.r.ReadRune()
	if err != nil {
		return 0, err
	}
	if ch == eof {
		return 0, newErr(KindEOF, "EOF while reading string")
	}
	if simple, ok := simpleEscapes[ch]; ok {
		return simple, nil
	}
	switch {
	case ch == 'x':
		return rd.readUnicodeEscape(2, 16)
	case ch == 'u':
		return rd.readUnicodeEscape(4, 16)
	case ch >= '0' && ch <= '9':
		// Legacy Unicode-escape form (spec §4.5): a single decimal
		// digit produces the code point equal to its numeric value.
		return ch - '0', nil
	default:
		return 0, newErr(KindLexical, "Unsupported escape character: \\%c", ch)
	}
}

// readUnicodeEscape reads exactly n digits in the given base and
// returns the resulting code point, per spec §4.5's \xHH and \uHHHH
// forms.
func (rd *Reader) readUnicodeEscape(n, base int) (rune, error) {
	digits := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		ch, err := rd.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if ch == eof {
			return 0, newErr(KindEOF, "EOF while reading string")
		}
		if !isDigitInBase(ch, base) {
			return 0, newErr(KindLexical, "Invalid unicode escape: \\%c", ch)
		}
		digits = append(digits, byte(ch))
	}
	v, err := strconv.ParseInt(string(digits), base, 32)
	if err != nil {
		return 0, newErr(KindLexical, "Invalid unicode escape: %s", digits)
	}
	return rune(v), nil
}

func isDigitInBase(ch rune, base int) bool {
	var v int
	switch {
	case ch >= '0' && ch <= '9':
		v = int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		v = int(ch-'a') + 10
	case ch >= 'A' && ch <= 'Z':
		v = int(ch-'A') + 10
	default:
		return false
	}
	return v < base
}
