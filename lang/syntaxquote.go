package lang

import (
	"math/big"
	"strings"
)

// readSyntaxQuoteMacro implements the '`' row of spec §4.9: read the
// next form and run it through the syntax-quote transform (§4.11).
// The gensym environment is established once, at the outermost active
// syntax-quote — spec §4.11 says nested syntax-quotes "reuse the
// innermost active environment" — and is guaranteed to be torn down on
// every exit path, including an error, via defer (the explicit
// push/pop discipline spec §5/§9 calls for in place of the teacher's
// dynamic Var binding).
func readSyntaxQuoteMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	established := false
	if rd.gensymEnv == nil {
		rd.gensymEnv = map[string]*Symbol{}
		established = true
	}
	defer func() {
		if established {
			rd.gensymEnv = nil
		}
	}()

	form, err := rd.read(true, nil, 0, nil, true)
	if err != nil {
		return nil, false, err
	}
	result, err := rd.syntaxQuote(form)
	if err != nil {
		return nil, false, err
	}
	return result, false, nil
}

// syntaxQuote implements spec §4.11's pure tree rewrite, SQ(form).
func (rd *Reader) syntaxQuote(form interface{}) (interface{}, error) {
	switch v := form.(type) {
	case nil:
		return quoteForm(nil), nil

	case *Symbol:
		return rd.syntaxQuoteSymbol(v)

	case *Keyword, int64, float64, rune, string, *big.Int, *Ratio:
		return form, nil

	case *List:
		if isUnquote(v) {
			return v.Items[1], nil
		}
		if isUnquoteSplicing(v) {
			return nil, newErr(KindMacroPosition, "splice not in list")
		}
		if len(v.Items) == 0 {
			return NewList(LIST), nil
		}
		expanded, err := rd.expandItems(v.Items)
		if err != nil {
			return nil, err
		}
		return NewList(SEQ, concatForm(expanded)), nil

	case *Vector:
		expanded, err := rd.expandItems(v.Items)
		if err != nil {
			return nil, err
		}
		return NewList(APPLY, VECTOR, NewList(SEQ, concatForm(expanded))), nil

	case *Map:
		keys, vals := v.Entries()
		flat := make([]interface{}, 0, 2*len(keys))
		for i := range keys {
			flat = append(flat, keys[i], vals[i])
		}
		expanded, err := rd.expandItems(flat)
		if err != nil {
			return nil, err
		}
		return NewList(APPLY, HASHMAP, NewList(SEQ, concatForm(expanded))), nil

	case *Set:
		expanded, err := rd.expandItems(v.Items)
		if err != nil {
			return nil, err
		}
		return NewList(APPLY, HASHSET, NewList(SEQ, concatForm(expanded))), nil

	default:
		return quoteForm(form), nil
	}
}

// syntaxQuoteSymbol implements the symbol branch of spec §4.11 rule 2,
// including the §9 open question on constructor sugar: this
// implementation re-appends the trailing '.' after resolving the
// stripped name (see DESIGN.md for why).
func (rd *Reader) syntaxQuoteSymbol(sym *Symbol) (interface{}, error) {
	if rd.resolver.Specials()[sym.Name] {
		return quoteForm(sym), nil
	}

	if sym.Namespace == "" && strings.HasSuffix(sym.Name, "#") {
		stripped := strings.TrimSuffix(sym.Name, "#")
		gs, ok := rd.gensymEnv[sym.Name]
		if !ok {
			gs = AutoGensym(stripped)
			rd.gensymEnv[sym.Name] = gs
		}
		return quoteForm(gs), nil
	}

	if sym.Namespace == "" && strings.HasSuffix(sym.Name, ".") {
		stripped := strings.TrimSuffix(sym.Name, ".")
		resolved, err := rd.resolver.Resolve(&Symbol{Name: stripped})
		if err != nil {
			return nil, err
		}
		return quoteForm(&Symbol{Namespace: resolved.Namespace, Name: resolved.Name + "."}), nil
	}

	if sym.Namespace == "" && strings.HasPrefix(sym.Name, ".") {
		return quoteForm(sym), nil
	}

	resolved, err := rd.resolver.Resolve(sym)
	if err != nil {
		return nil, err
	}
	return quoteForm(resolved), nil
}

func quoteForm(v interface{}) *List { return NewList(QUOTE, v) }

func isUnquote(l *List) bool {
	return len(l.Items) == 2 && symEqual(l.Items[0], UNQUOTE)
}

func isUnquoteSplicing(l *List) bool {
	return len(l.Items) == 2 && symEqual(l.Items[0], UNQUOTE_SPLICING)
}

func symEqual(v interface{}, sym *Symbol) bool {
	s, ok := v.(*Symbol)
	return ok && s.Equal(sym)
}

// expandItems implements E(items) from spec §4.11 rule 6: map each
// item to (list X) for unquote, X itself for unquote-splicing (so it
// splices when later concatenated), or (list (SQ item)) otherwise.
func (rd *Reader) expandItems(items []interface{}) ([]interface{}, error) {
	out := make([]interface{}, 0, len(items))
	for _, item := range items {
		if l, ok := item.(*List); ok {
			if isUnquote(l) {
				out = append(out, NewList(LIST, l.Items[1]))
				continue
			}
			if isUnquoteSplicing(l) {
				out = append(out, l.Items[1])
				continue
			}
		}
		sq, err := rd.syntaxQuote(item)
		if err != nil {
			return nil, err
		}
		out = append(out, NewList(LIST, sq))
	}
	return out, nil
}

// concatForm builds (concat e1 e2 ...) from the expanded item forms.
func concatForm(expanded []interface{}) *List {
	items := make([]interface{}, 0, len(expanded)+1)
	items = append(items, CONCAT)
	items = append(items, expanded...)
	return NewList(items...)
}
