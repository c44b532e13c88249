package lang

import "unicode"

// isWhitespace implements spec §4.2: Unicode breaking whitespace, plus
// the comma, which Clojure-family readers treat as whitespace so it
// can be used as a free-form separator.
func isWhitespace(ch rune) bool {
	return ch == ',' || unicode.IsSpace(ch)
}

// isNumericStart implements spec §4.2's "numeric" classification: an
// ASCII decimal digit.
func isNumericStart(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isCommentStart(ch rune) bool {
	return ch == ';'
}

// isMacro reports whether ch has a reader-macro binding (§4.9).
func (rd *Reader) isMacro(ch rune) bool {
	_, ok := rd.macros[ch]
	return ok
}

// isTerminatingMacro implements spec §4.2: a macro character that
// terminates a token, which is every macro character except '#', '\''
// and ':' (the last because ':' begins keywords, which themselves
// scan as tokens up to a later terminator).
func (rd *Reader) isTerminatingMacro(ch rune) bool {
	if ch == '#' || ch == '\'' || ch == ':' {
		return false
	}
	return rd.isMacro(ch)
}
