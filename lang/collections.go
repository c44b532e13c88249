package lang

import "math/big"

// List is an ordered, possibly-empty sequence with list semantics
// (spec §3: "list | ordered sequence | may be empty; preserves
// insertion order"). Reader-constructed lists are read in full before
// the List itself is built, so a simple immutable slice backing is
// sufficient for this package's needs.
type List struct {
	Items []interface{}
	meta  Meta
}

func NewList(items ...interface{}) *List {
	return &List{Items: items}
}

func (l *List) Meta() Meta { return l.meta }

func (l *List) WithMeta(m Meta) interface{} {
	cp := *l
	cp.meta = mergeMeta(l.meta, m)
	return &cp
}

func (l *List) Equal(other interface{}) bool {
	o, ok := other.(*List)
	if !ok || len(o.Items) != len(l.Items) {
		return false
	}
	for i := range l.Items {
		if !Equal(l.Items[i], o.Items[i]) {
			return false
		}
	}
	return true
}

// Vector is an ordered sequence with random-access semantics (spec §3).
type Vector struct {
	Items []interface{}
	meta  Meta
}

func NewVector(items ...interface{}) *Vector {
	return &Vector{Items: items}
}

func (v *Vector) Meta() Meta { return v.meta }

func (v *Vector) WithMeta(m Meta) interface{} {
	cp := *v
	cp.meta = mergeMeta(v.meta, m)
	return &cp
}

func (v *Vector) Equal(other interface{}) bool {
	o, ok := other.(*Vector)
	if !ok || len(o.Items) != len(v.Items) {
		return false
	}
	for i := range v.Items {
		if !Equal(v.Items[i], o.Items[i]) {
			return false
		}
	}
	return true
}

// Map associates keys to values, keys unique under value equality
// (spec §3). Backed by parallel slices in insertion order; the spec
// does not require any particular iteration order but preserving
// insertion order makes the reader deterministic and easy to test.
type Map struct {
	keys  []interface{}
	vals  []interface{}
	meta  Meta
}

// NewMapFromEntries builds a Map from a flat, already-even-length
// slice of alternating key/value forms, as produced by the map reader
// (§4.7). A later duplicate key overwrites an earlier one.
func NewMapFromEntries(kvs []interface{}) *Map {
	m := &Map{}
	for i := 0; i+1 < len(kvs); i += 2 {
		m = m.assoc(kvs[i], kvs[i+1])
	}
	return m
}

func (m *Map) assoc(k, v interface{}) *Map {
	for i, ek := range m.keys {
		if Equal(ek, k) {
			nk := append([]interface{}{}, m.keys...)
			nv := append([]interface{}{}, m.vals...)
			nv[i] = v
			return &Map{keys: nk, vals: nv, meta: m.meta}
		}
	}
	return &Map{
		keys: append(append([]interface{}{}, m.keys...), k),
		vals: append(append([]interface{}{}, m.vals...), v),
		meta: m.meta,
	}
}

func (m *Map) Count() int { return len(m.keys) }

func (m *Map) Get(k interface{}) (interface{}, bool) {
	for i, ek := range m.keys {
		if Equal(ek, k) {
			return m.vals[i], true
		}
	}
	return nil, false
}

// Entries returns the map's key/value pairs in insertion order.
func (m *Map) Entries() ([]interface{}, []interface{}) { return m.keys, m.vals }

func (m *Map) Meta() Meta { return m.meta }

func (m *Map) WithMeta(meta Meta) interface{} {
	cp := *m
	cp.meta = mergeMeta(m.meta, meta)
	return &cp
}

func (m *Map) Equal(other interface{}) bool {
	o, ok := other.(*Map)
	if !ok || o.Count() != m.Count() {
		return false
	}
	for i, k := range m.keys {
		ov, found := o.Get(k)
		if !found || !Equal(m.vals[i], ov) {
			return false
		}
	}
	return true
}

// Set is an unordered collection, uniqueness under value equality
// (spec §3).
type Set struct {
	Items []interface{}
	meta  Meta
}

// NewSet builds a Set from items, dropping later duplicates (by value
// equality) so the uniqueness invariant always holds.
func NewSet(items ...interface{}) *Set {
	out := make([]interface{}, 0, len(items))
	for _, it := range items {
		dup := false
		for _, existing := range out {
			if Equal(existing, it) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, it)
		}
	}
	return &Set{Items: out}
}

func (s *Set) Meta() Meta { return s.meta }

func (s *Set) WithMeta(m Meta) interface{} {
	cp := *s
	cp.meta = mergeMeta(s.meta, m)
	return &cp
}

func (s *Set) Equal(other interface{}) bool {
	o, ok := other.(*Set)
	if !ok || len(o.Items) != len(s.Items) {
		return false
	}
	for _, it := range s.Items {
		found := false
		for _, oit := range o.Items {
			if Equal(it, oit) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Queue is the persistent FIFO structure the #queue tag parser
// constructs (spec §4.16). Reader-built queues are populated once from
// a vector of elements, so a slice is enough to satisfy the contract.
type Queue struct {
	Items []interface{}
}

func NewQueue(items ...interface{}) *Queue {
	return &Queue{Items: append([]interface{}{}, items...)}
}

func (q *Queue) Equal(other interface{}) bool {
	o, ok := other.(*Queue)
	if !ok || len(o.Items) != len(q.Items) {
		return false
	}
	for i := range q.Items {
		if !Equal(q.Items[i], o.Items[i]) {
			return false
		}
	}
	return true
}

type equaler interface {
	Equal(other interface{}) bool
}

// Equal implements the value-equality relation spec §3 requires for
// map-key and set-member uniqueness: structural equality for
// collections and the reader's atom types, identity-independent.
func Equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ea, ok := a.(equaler); ok {
		return ea.Equal(b)
	}
	switch av := a.(type) {
	case *big.Int:
		bv, ok := toBigInt(b)
		return ok && av.Cmp(bv) == 0
	case int64:
		bv, ok := toBigInt(b)
		return ok && big.NewInt(av).Cmp(bv) == 0
	default:
		return a == b
	}
}

func toBigInt(v interface{}) (*big.Int, bool) {
	switch n := v.(type) {
	case *big.Int:
		return n, true
	case int64:
		return big.NewInt(n), true
	default:
		return nil, false
	}
}
