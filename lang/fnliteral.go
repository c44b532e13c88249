package lang

import (
	"math/big"
	"strconv"
)

var fnStar = NewSymbol("", "fn*")
var ampersandSym = NewSymbol("", "&")

// readFnLiteralMacro implements spec §4.13: `#(...)`. Nested literals
// are rejected by checking the active arg environment at entry; a
// fresh one is installed, the dispatch character '(' is pushed back so
// the top-level driver reads the body as an ordinary list, and on exit
// the positional/rest argument symbols collected during that read are
// assembled into an `(fn* [args...] body)` form.
func readFnLiteralMacro(rd *Reader, ch rune) (interface{}, bool, error) {
	if rd.argEnv != nil {
		return nil, false, newErr(KindMacroPosition, "nested #()s are not allowed")
	}
	if err := rd.r.UnreadRune(); err != nil {
		return nil, false, err
	}

	rd.argEnv = &argEnvironment{params: map[int]*Symbol{}}
	defer func() { rd.argEnv = nil }()

	body, err := rd.read(true, nil, 0, nil, true)
	if err != nil {
		return nil, false, err
	}

	maxArg := 0
	for _, k := range rd.argEnv.order {
		if k > maxArg {
			maxArg = k
		}
	}

	args := make([]interface{}, 0, maxArg+2)
	for i := 1; i <= maxArg; i++ {
		sym, ok := rd.argEnv.params[i]
		if !ok {
			sym = Gensym("p" + strconv.Itoa(i) + "__")
		}
		args = append(args, sym)
	}
	if rest, ok := rd.argEnv.params[-1]; ok {
		args = append(args, ampersandSym, rest)
	}

	return NewList(fnStar, NewVector(args...), body), false, nil
}

// readArgMacro implements the `%` row of spec §4.9 together with
// spec §4.13's arg-registration rules. Outside an active fn-literal
// arg environment, '%' is just the start of an ordinary symbol token.
func readArgMacro(rd *Reader, ch rune) (interface{}, bool, error) {
	if rd.argEnv == nil {
		tok, err := rd.readToken(ch)
		if err != nil {
			return nil, false, err
		}
		v, err := interpretToken(tok)
		if err != nil {
			return nil, false, err
		}
		return v, false, nil
	}

	next, err := rd.r.ReadRune()
	if err != nil {
		return nil, false, err
	}
	if next == eof || isWhitespace(next) || rd.isTerminatingMacro(next) {
		if next != eof {
			if err := rd.r.UnreadRune(); err != nil {
				return nil, false, err
			}
		}
		return rd.registerArg(1), false, nil
	}
	if err := rd.r.UnreadRune(); err != nil {
		return nil, false, err
	}

	n, err := rd.read(true, nil, 0, nil, true)
	if err != nil {
		return nil, false, err
	}
	if sym, ok := n.(*Symbol); ok && sym.Namespace == "" && sym.Name == "&" {
		return rd.registerArg(-1), false, nil
	}
	idx, ok := nonNegativeInt(n)
	if !ok {
		return nil, false, newErr(KindLexical, "arg literal must be %%, %%&, or %%integer")
	}
	return rd.registerArg(idx), false, nil
}

func nonNegativeInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int64:
		if n < 0 {
			return 0, false
		}
		return int(n), true
	case *big.Int:
		if n.Sign() < 0 || !n.IsInt64() {
			return 0, false
		}
		return int(n.Int64()), true
	default:
		return 0, false
	}
}

// registerArg implements spec §4.13's "register": look up key in the
// active arg environment, returning the existing symbol, or allocate
// and record a fresh gensym.
func (rd *Reader) registerArg(key int) *Symbol {
	if sym, ok := rd.argEnv.params[key]; ok {
		return sym
	}
	var sym *Symbol
	if key == -1 {
		sym = Gensym("rest__")
	} else {
		sym = Gensym("p" + strconv.Itoa(key) + "__")
	}
	rd.argEnv.params[key] = sym
	rd.argEnv.order = append(rd.argEnv.order, key)
	return sym
}
