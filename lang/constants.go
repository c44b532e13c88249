package lang

// Well-known symbols the syntax-quote engine and wrapping macros emit.
// Mirrors the teacher's package-level QUOTE/UNQUOTE/... var block, kept
// as the same kind of constant table but namespaced under the core
// library rather than "clojure.core" (this is not Clojure).
var (
	QUOTE            = NewSymbol("", "quote")
	THE_VAR          = NewSymbol("", "var")
	UNQUOTE          = NewSymbol("core", "unquote")
	UNQUOTE_SPLICING = NewSymbol("core", "unquote-splicing")
	CONCAT           = NewSymbol("core", "concat")
	SEQ              = NewSymbol("core", "seq")
	LIST             = NewSymbol("core", "list")
	APPLY            = NewSymbol("core", "apply")
	HASHMAP          = NewSymbol("core", "hash-map")
	HASHSET          = NewSymbol("core", "hash-set")
	VECTOR           = NewSymbol("core", "vector")
	WITH_META        = NewSymbol("core", "with-meta")
	DEREF            = NewSymbol("core", "deref")
)
