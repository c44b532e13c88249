package lang

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Regex is the reader's compiled-pattern value (spec §3). Backed by
// regexp2 rather than the stdlib regexp package: Clojure-family regex
// literals are expected to support backreferences and lookaround that
// Go's RE2-based regexp engine structurally cannot express, and
// regexp2 (seen in the pack via sentrie-sh-sentrie's dependency graph)
// is a backtracking engine with that feature set.
type Regex struct {
	*regexp2.Regexp
	Source string
}

func (r *Regex) Equal(other interface{}) bool {
	o, ok := other.(*Regex)
	return ok && o.Source == r.Source
}

// readRegexMacro implements spec §4.6: read characters verbatim until
// an unescaped '"'; a backslash causes the following character
// (including a quote) to be appended literally. EOF before the
// terminator is an error. The body is then handed to the regex
// constructor.
func readRegexMacro(rd *Reader, _ rune) (interface{}, bool, error) {
	var b strings.Builder
	for {
		ch, err := rd.r.ReadRune()
		if err != nil {
			return nil, false, err
		}
		if ch == eof {
			return nil, false, newErr(KindEOF, "EOF while reading regex")
		}
		if ch == '"' {
			break
		}
		b.WriteRune(ch)
		if ch == '\\' {
			ch2, err := rd.r.ReadRune()
			if err != nil {
				return nil, false, err
			}
			if ch2 == eof {
				return nil, false, newErr(KindEOF, "EOF while reading regex")
			}
			b.WriteRune(ch2)
		}
	}
	src := b.String()
	re, err := regexp2.Compile(src, regexp2.None)
	if err != nil {
		return nil, false, wrapErr(KindSemantic, err, "Invalid regex pattern: %s", src)
	}
	return &Regex{Regexp: re, Source: src}, false, nil
}
