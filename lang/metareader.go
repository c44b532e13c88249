package lang

var tagKeyword = NewKeyword("", "tag")

// readMetaMacro implements spec §4.10: read a metadata form M, desugar
// it to a Meta map, read the next form O, and attach the merged
// metadata to O if O supports it.
func readMetaMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	m, err := rd.read(true, nil, 0, nil, true)
	if err != nil {
		return nil, false, err
	}
	meta, err := desugarMeta(m)
	if err != nil {
		return nil, false, err
	}

	o, err := rd.read(true, nil, 0, nil, true)
	if err != nil {
		return nil, false, err
	}
	v, ok := attachMeta(o, meta)
	if !ok {
		return nil, false, newErr(KindStructural, "Metadata can only be applied to values that support it")
	}
	return v, false, nil
}

func desugarMeta(m interface{}) (Meta, error) {
	switch v := m.(type) {
	case *Symbol:
		return Meta{tagKeyword: v}, nil
	case string:
		return Meta{tagKeyword: v}, nil
	case *Keyword:
		return Meta{v: true}, nil
	case *Map:
		keys, vals := v.Entries()
		out := make(Meta, len(keys))
		for i, k := range keys {
			out[k] = vals[i]
		}
		return out, nil
	default:
		return nil, newErr(KindStructural, "Metadata must be Symbol, Keyword, String or Map")
	}
}
