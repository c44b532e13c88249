package lang

// readDispatchMacro implements spec §4.14: read the character after
// '#', consult the dispatch table, and otherwise treat the following
// token as a tag name to look up in the tag-parser registry.
func readDispatchMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	ch, err := rd.r.ReadRune()
	if err != nil {
		return nil, false, err
	}
	if ch == eof {
		return nil, false, newErr(KindEOF, "EOF while reading character")
	}

	if fn, ok := rd.dispatchMacros[ch]; ok {
		return fn(rd, ch)
	}

	return rd.readTagged(ch)
}

// readTagged implements the tag-literal branch of spec §4.14: scan a
// symbol token starting at ch, look it up in the tag registry, read
// one form as its argument, and invoke the handler.
func (rd *Reader) readTagged(ch rune) (interface{}, bool, error) {
	tok, err := rd.readToken(ch)
	if err != nil {
		return nil, false, err
	}
	sym := ParseSymbol(tok)
	tag := sym.String()

	handler, ok := rd.registry.Lookup(tag)
	if !ok {
		return nil, false, newErr(KindSemantic, "No reader function for tag %s. Registered tags: %s", tag, formatTagNames(rd.registry.Names()))
	}

	arg, err := rd.read(true, nil, 0, nil, true)
	if err != nil {
		return nil, false, err
	}
	v, err := handler(arg)
	if err != nil {
		return nil, false, err
	}
	return v, false, nil
}
