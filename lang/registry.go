package lang

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// TagHandler is the tag-parser registry's entry contract (spec §6):
// take the one form read as the tag's argument, produce a value.
type TagHandler func(arg interface{}) (interface{}, error)

// TagRegistry is the process-wide, mutable tag-parser table spec §5/§6
// describes. Registrations are expected to be single-writer but reads
// (i.e. every #tag lookup during a read call) must be safe concurrently
// with a registration. This is the adapted descendant of the teacher's
// go/lang/ARef.go: that file modeled a mutable reference cell with a
// validator and watcher callbacks for Clojure's general Atom/Ref
// protocol; here it is narrowed to exactly the one capability this
// registry needs — an atomically-swapped, copy-on-write snapshot — and
// the "watch" concept becomes the registry's own invariant (built-ins
// always present) rather than a general callback list.
type TagRegistry struct {
	writeMu sync.Mutex
	ref     atomic.Value // map[string]TagHandler
}

// NewTagRegistry returns a registry pre-seeded with the three built-in
// tag parsers spec §4.16/§5 require at startup.
func NewTagRegistry() *TagRegistry {
	reg := &TagRegistry{}
	snapshot := map[string]TagHandler{
		"inst":  instTagHandler,
		"uuid":  uuidTagHandler,
		"queue": queueTagHandler,
	}
	reg.ref.Store(snapshot)
	return reg
}

func (reg *TagRegistry) snapshot() map[string]TagHandler {
	return reg.ref.Load().(map[string]TagHandler)
}

// Lookup returns the handler registered for tag, if any.
func (reg *TagRegistry) Lookup(tag string) (TagHandler, bool) {
	h, ok := reg.snapshot()[tag]
	return h, ok
}

// Names returns the sorted list of currently registered tag names, used
// to build the "unknown tag" error message (spec §4.14).
func (reg *TagRegistry) Names() []string {
	snap := reg.snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Register installs handler for tag, returning the previously
// registered handler (or nil) per spec §6's API. Copy-on-write under a
// write mutex: concurrent readers always see a complete, consistent
// map, either the old one or the new one.
func (reg *TagRegistry) Register(tag string, handler TagHandler) TagHandler {
	reg.writeMu.Lock()
	defer reg.writeMu.Unlock()
	old := reg.snapshot()
	previous := old[tag]
	next := make(map[string]TagHandler, len(old)+1)
	for k, v := range old {
		next[k] = v
	}
	next[tag] = handler
	reg.ref.Store(next)
	return previous
}

// Deregister removes tag, returning the handler that was registered
// (or nil) per spec §6's API.
func (reg *TagRegistry) Deregister(tag string) TagHandler {
	reg.writeMu.Lock()
	defer reg.writeMu.Unlock()
	old := reg.snapshot()
	previous, ok := old[tag]
	if !ok {
		return nil
	}
	next := make(map[string]TagHandler, len(old))
	for k, v := range old {
		if k != tag {
			next[k] = v
		}
	}
	reg.ref.Store(next)
	return previous
}

// defaultRegistry is the process-wide registry new Readers use unless
// overridden with WithTagRegistry.
var defaultRegistry = NewTagRegistry()

// RegisterTag registers handler for tag in the default, process-wide
// registry.
func RegisterTag(tag string, handler TagHandler) TagHandler {
	return defaultRegistry.Register(tag, handler)
}

// DeregisterTag removes tag from the default, process-wide registry.
func DeregisterTag(tag string) TagHandler {
	return defaultRegistry.Deregister(tag)
}

func formatTagNames(names []string) string {
	return strings.Join(names, ", ")
}
