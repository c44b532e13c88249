package lang

import "strings"

// interpretToken implements spec §4.8's token-to-value policy for a
// token scanned outside of keyword position: nil/true/false literals,
// else a symbol split on the first '/'.
func interpretToken(tok string) (interface{}, error) {
	switch tok {
	case "nil":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	sym := ParseSymbol(tok)
	if err := validateSymbolParts(sym.Namespace, sym.Name); err != nil {
		return nil, err
	}
	return sym, nil
}

// validateSymbolParts enforces spec §3's symbol/keyword invariants:
// name nonempty, neither namespace nor name ends in ':' or '/'. The
// §9 open question ("ends with ':' check ... even when the namespace
// is absent") is resolved here by guarding on non-empty length before
// inspecting the last character.
func validateSymbolParts(ns, name string) error {
	if name == "" {
		return newErr(KindLexical, "Invalid token: empty name")
	}
	if ns != "" && (strings.HasSuffix(ns, ":") || strings.HasSuffix(ns, "/")) {
		return newErr(KindLexical, "Invalid token: namespace %q ends with ':' or '/'", ns)
	}
	if name != "/" && (strings.HasSuffix(name, ":") || strings.HasSuffix(name, "/")) {
		return newErr(KindLexical, "Invalid token: name %q ends with ':' or '/'", name)
	}
	return nil
}

// readKeywordMacro implements spec §4.8's keyword reader, invoked by
// the reader-macro table on ':'. The leading ':' has already been
// consumed by the dispatcher loop via ch; this reads the rest of the
// token and applies keyword-specific rules on top of
// validateSymbolParts: auto-namespacing for "::name" and rejection of
// any further "::" inside the token.
func readKeywordMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	ch, err := rd.r.ReadRune()
	if err != nil {
		return nil, false, err
	}
	if ch == eof || isWhitespace(ch) || rd.isTerminatingMacro(ch) {
		return nil, false, newErr(KindLexical, "Invalid token: :")
	}

	autoNS := false
	if ch == ':' {
		autoNS = true
		ch, err = rd.r.ReadRune()
		if err != nil {
			return nil, false, err
		}
		if ch == eof || isWhitespace(ch) || rd.isTerminatingMacro(ch) {
			return nil, false, newErr(KindLexical, "Invalid token: ::")
		}
	}

	tok, err := rd.readToken(ch)
	if err != nil {
		return nil, false, err
	}

	if strings.Contains(tok, "::") {
		return nil, false, newErr(KindLexical, "Invalid token: :%s", tok)
	}

	sym := ParseSymbol(tok)
	if err := validateSymbolParts(sym.Namespace, sym.Name); err != nil {
		return nil, false, err
	}

	if autoNS {
		if sym.Namespace != "" {
			return nil, false, newErr(KindLexical, "Invalid token: ::%s/%s", sym.Namespace, sym.Name)
		}
		ns := rd.resolver.CurrentNamespace()
		return NewKeyword(ns, sym.Name), false, nil
	}
	return NewKeyword(sym.Namespace, sym.Name), false, nil
}
