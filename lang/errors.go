package lang

import "fmt"

// Kind classifies a reader failure the way spec §7 groups them: by what
// went wrong, not by Go type. Callers that care can switch on Kind via
// errors.As against *ReaderError.
type Kind int

const (
	KindEOF Kind = iota
	KindLexical
	KindStructural
	KindSemantic
	KindMacroPosition
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "eof"
	case KindLexical:
		return "lexical"
	case KindStructural:
		return "structural"
	case KindSemantic:
		return "semantic"
	case KindMacroPosition:
		return "macro-position"
	default:
		return "unknown"
	}
}

// ReaderError is the single error type the reader raises. Every failure
// path in this package constructs one of these rather than panicking;
// spec §7 calls for non-local abort of the whole top-level read, which
// plain error-return-and-propagate already gives us.
type ReaderError struct {
	Kind Kind
	Msg  string
	err  error
}

func (e *ReaderError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.err)
	}
	return e.Msg
}

func (e *ReaderError) Unwrap() error { return e.err }

func newErr(k Kind, format string, args ...interface{}) *ReaderError {
	return &ReaderError{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func wrapErr(k Kind, err error, format string, args ...interface{}) *ReaderError {
	return &ReaderError{Kind: k, Msg: fmt.Sprintf(format, args...), err: err}
}
