package lang

import (
	"bufio"
	"io"
	"strings"
)

// eof is the distinguishable end-of-stream sentinel spec §3 requires;
// rune(-1) is never a valid Unicode scalar value so it is safe to use
// as an out-of-band marker alongside a real rune.
const eof = rune(-1)

// PushbackReader is the character source spec §4.1 describes: read one
// rune at a time, with the ability to push exactly one rune back onto
// the stream (this implementation, like bufio.Reader underneath it,
// supports unreading only the single most recently read rune — which
// satisfies the "depth ≥ 1 guaranteed" invariant).
type PushbackReader struct {
	r *bufio.Reader
}

// NewPushbackReader wraps an io.Reader as a PushbackReader.
func NewPushbackReader(r io.Reader) *PushbackReader {
	return &PushbackReader{r: bufio.NewReader(r)}
}

// NewStringPushbackReader is a convenience constructor for read-string.
func NewStringPushbackReader(s string) *PushbackReader {
	return NewPushbackReader(strings.NewReader(s))
}

// ReadRune returns the next rune, or the eof sentinel at end of stream.
func (pr *PushbackReader) ReadRune() (rune, error) {
	ch, _, err := pr.r.ReadRune()
	if err == io.EOF {
		return eof, nil
	}
	if err != nil {
		return eof, wrapErr(KindEOF, err, "error reading input")
	}
	return ch, nil
}

// UnreadRune pushes the most recently read rune back onto the stream.
// Per spec §4.1 this must succeed at least once since the last read.
func (pr *PushbackReader) UnreadRune() error {
	if err := pr.r.UnreadRune(); err != nil {
		return wrapErr(KindStructural, err, "unread called without a prior read")
	}
	return nil
}
