package lang

// readUnquoteMacro implements spec §4.12: peek the next character; if
// '@', read one form and return (unquote-splicing F); otherwise push
// the peeked character back and return (unquote F). These forms carry
// no special meaning outside a syntax-quote — they are recognized by
// syntaxQuote purely by head symbol, as spec §4.12 notes.
func readUnquoteMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	ch, err := rd.r.ReadRune()
	if err != nil {
		return nil, false, err
	}
	if ch == eof {
		return nil, false, newErr(KindEOF, "EOF while reading unquote")
	}
	if ch == '@' {
		form, err := rd.read(true, nil, 0, nil, true)
		if err != nil {
			return nil, false, err
		}
		return NewList(UNQUOTE_SPLICING, form), false, nil
	}
	if err := rd.r.UnreadRune(); err != nil {
		return nil, false, err
	}
	form, err := rd.read(true, nil, 0, nil, true)
	if err != nil {
		return nil, false, err
	}
	return NewList(UNQUOTE, form), false, nil
}
