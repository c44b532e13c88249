// Command glj is a line-oriented REPL front end over the lang reader:
// type a form, see it parsed back out. Each entered line is appended to
// a buffer that is re-read with ReadString; an EOF-kind error means the
// form is still incomplete, so the prompt keeps accumulating lines until
// a complete top-level form is available.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/tlamr/glojure/lang"
)

func main() {
	ns := flag.String("ns", "user", "default namespace for unqualified symbols")
	flag.Parse()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	resolver := lang.NewDefaultResolver(*ns)
	fmt.Printf("glj — %s=> \n", *ns)

	var buf strings.Builder
	prompt := *ns + "=> "

	for {
		text, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			log.Printf("input error: %v", err)
			return
		}

		buf.WriteString(text)
		buf.WriteByte('\n')
		line.AppendHistory(text)

		v, rerr := lang.ReadString(buf.String(), lang.WithResolver(resolver))
		if rerr != nil {
			if re, ok := rerr.(*lang.ReaderError); ok && re.Kind == lang.KindEOF {
				prompt = strings.Repeat(" ", len(*ns)+2)
				continue
			}
			fmt.Fprintf(os.Stderr, "%v\n", rerr)
			buf.Reset()
			prompt = *ns + "=> "
			continue
		}

		fmt.Println(formatValue(v))
		buf.Reset()
		prompt = *ns + "=> "
	}
}

// formatValue renders a reader value back out as text, enough to make
// the REPL useful for eyeballing what was parsed. This is a reader
// utility, not an evaluator: there is no semantic printer elsewhere in
// this module to reuse.
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return fmt.Sprintf("%q", t)
	case fmt.Stringer:
		return t.String()
	case *lang.List:
		return formatSeq("(", ")", t.Items)
	case *lang.Vector:
		return formatSeq("[", "]", t.Items)
	case *lang.Set:
		return formatSeq("#{", "}", t.Items)
	case *lang.Queue:
		return formatSeq("#queue [", "]", t.Items)
	case *lang.Map:
		keys, vals := t.Entries()
		var b strings.Builder
		b.WriteByte('{')
		for i := range keys {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatValue(keys[i]))
			b.WriteByte(' ')
			b.WriteString(formatValue(vals[i]))
		}
		b.WriteByte('}')
		return b.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func formatSeq(open, close string, items []interface{}) string {
	var b strings.Builder
	b.WriteString(open)
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatValue(it))
	}
	b.WriteString(close)
	return b.String()
}
