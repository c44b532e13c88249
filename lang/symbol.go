package lang

import (
	"strconv"
	"strings"
	"sync"
)

// Symbol is a name, optionally namespace-qualified. It is the reader's
// representation of an identifier form; spec §3 requires a nonempty
// name and forbids a name or namespace ending in ':' or '/'.
type Symbol struct {
	Namespace string
	Name      string
	meta      Meta
}

// NewSymbol builds a symbol from a possibly-empty namespace and a name.
func NewSymbol(ns, name string) *Symbol {
	return &Symbol{Namespace: ns, Name: name}
}

// ParseSymbol splits token on the first '/' into namespace/name, the
// policy spec §4.8 describes for a token without special-cased nil/
// true/false handling (that happens one level up, in interpretToken).
func ParseSymbol(token string) *Symbol {
	if token == "/" {
		return &Symbol{Name: "/"}
	}
	if idx := strings.IndexByte(token, '/'); idx > 0 && idx < len(token)-1 {
		return &Symbol{Namespace: token[:idx], Name: token[idx+1:]}
	}
	return &Symbol{Name: token}
}

func (s *Symbol) String() string {
	if s.Namespace != "" {
		return s.Namespace + "/" + s.Name
	}
	return s.Name
}

func (s *Symbol) Equal(other interface{}) bool {
	o, ok := other.(*Symbol)
	return ok && o.Namespace == s.Namespace && o.Name == s.Name
}

func (s *Symbol) Meta() Meta { return s.meta }

func (s *Symbol) WithMeta(m Meta) interface{} {
	cp := *s
	cp.meta = mergeMeta(s.meta, m)
	return &cp
}

// Keyword is like a Symbol but self-evaluating and printed with a
// leading ':'; spec §3 gives it the same namespace/name constraints.
//
// Keywords are interned (one *Keyword per distinct ns/name pair) so
// that two independently-read occurrences of the same keyword compare
// equal by Go's native map/== semantics, not just via Equal — this is
// what lets Meta (a plain map[interface{}]interface{}) merge keyword
// keys correctly in readMetaMacro.
type Keyword struct {
	Namespace string
	Name      string
}

var (
	keywordTableMu sync.Mutex
	keywordTable   = map[string]*Keyword{}
)

// NewKeyword returns the interned keyword for ns/name, creating it on
// first use. The name InternKeyword is kept as an alias for parity
// with the teacher's InternKeyword/InternSymbol naming.
func NewKeyword(ns, name string) *Keyword {
	key := ns + "/" + name
	keywordTableMu.Lock()
	defer keywordTableMu.Unlock()
	if k, ok := keywordTable[key]; ok {
		return k
	}
	k := &Keyword{Namespace: ns, Name: name}
	keywordTable[key] = k
	return k
}

// InternKeyword is an alias for NewKeyword, named after the teacher's
// InternKeyword/InternKeywordByNsName helpers.
func InternKeyword(ns, name string) *Keyword { return NewKeyword(ns, name) }

func (k *Keyword) String() string {
	if k.Namespace != "" {
		return ":" + k.Namespace + "/" + k.Name
	}
	return ":" + k.Name
}

func (k *Keyword) Equal(other interface{}) bool {
	o, ok := other.(*Keyword)
	return ok && o.Namespace == k.Namespace && o.Name == k.Name
}

// gensymCounter backs Gensym, the Go stand-in for clojure.lang.RT.nextID
// that the teacher's GENSYM_ENV logic assumes exists but never defines.
var gensymCounter uint64

// Gensym returns a fresh symbol named prefix followed by a unique
// numeric suffix. Called once per synthesized fn-literal parameter
// (§4.13).
func Gensym(prefix string) *Symbol {
	return &Symbol{Name: prefix + strconv.FormatUint(nextGensymID(), 10)}
}

// AutoGensym returns a fresh symbol in the conventional
// stripped__<id>__auto__ shape spec §4.11 describes for a user-written
// auto-symbol (e.g. "x#"), called once per distinct auto-symbol
// encountered during one syntax-quote invocation.
func AutoGensym(stripped string) *Symbol {
	return &Symbol{Name: stripped + "__" + strconv.FormatUint(nextGensymID(), 10) + "__auto__"}
}

func nextGensymID() uint64 {
	gensymCounter++
	return gensymCounter
}
