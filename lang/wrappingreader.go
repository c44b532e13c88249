package lang

// wrappingMacro implements spec §4.9's `'` and `@` bindings: read one
// form and wrap it as (sym form). Returned as a factory so the same
// shape serves both QUOTE and DEREF.
func wrappingMacro(sym *Symbol) macroFn {
	return func(rd *Reader, _ rune) (interface{}, bool, error) {
		form, err := rd.read(true, nil, 0, nil, true)
		if err != nil {
			return nil, false, err
		}
		return NewList(sym, form), false, nil
	}
}

// unmatchedDelimiterMacro implements spec §4.9's error row for ')',
// ']', '}' encountered outside a matching delimited-list read.
func unmatchedDelimiterMacro(rd *Reader, ch rune) (interface{}, bool, error) {
	return nil, false, newErr(KindStructural, "Unmatched delimiter: %c", ch)
}
