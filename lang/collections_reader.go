package lang

// delimDone is the reader's internal "saw the closing delimiter"
// sentinel, compared by pointer identity so it can never collide with
// a value a form legitimately reads to (including nil).
var delimDone = &struct{}{}

// readDelimitedList implements spec §4.7's delimited-list driver:
// repeatedly read a form until the closing delimiter is seen, erroring
// on EOF first. Whitespace skipping, macro dispatch, and the
// produced-nothing ("skip") rule are all already handled by read's own
// loop, so this is just read called with returnOn set to delim.
func (rd *Reader) readDelimitedList(delim rune) ([]interface{}, error) {
	var items []interface{}
	for {
		v, err := rd.read(true, nil, delim, delimDone, true)
		if err != nil {
			return nil, err
		}
		if v == interface{}(delimDone) {
			return items, nil
		}
		items = append(items, v)
	}
}

func readListMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	items, err := rd.readDelimitedList(')')
	if err != nil {
		return nil, false, err
	}
	return NewList(items...), false, nil
}

func readVectorMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	items, err := rd.readDelimitedList(']')
	if err != nil {
		return nil, false, err
	}
	return NewVector(items...), false, nil
}

func readMapMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	items, err := rd.readDelimitedList('}')
	if err != nil {
		return nil, false, err
	}
	if len(items)%2 != 0 {
		return nil, false, newErr(KindStructural, "Map literal must contain an even number of forms")
	}
	return NewMapFromEntries(items), false, nil
}

func readSetMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	items, err := rd.readDelimitedList('}')
	if err != nil {
		return nil, false, err
	}
	return NewSet(items...), false, nil
}

// readDiscardMacro implements the '#_' dispatch entry (spec §4.14):
// read and discard one form, producing nothing.
func readDiscardMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	if _, err := rd.read(true, nil, 0, nil, true); err != nil {
		return nil, false, err
	}
	return nil, true, nil
}
