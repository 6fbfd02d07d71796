// Command gendecode emits decode_table_gen.go: the 256-case dispatch switch
// that drives the qmx decoder's inner loop.
//
// The table is mechanical — case N calls processUnit once, checks whether
// the cursor should stop, and falls through to case N+1 otherwise — so it is
// generated instead of hand-maintained, the same reasoning the source gives
// for this part of the codec (spec §4.E, §9): a hand-written 256-case switch
// is exactly the kind of place a missing fallthrough goes unnoticed.
//
// Run with `go generate` from the module root:
//
//	//go:generate go run ./internal/gen -out decode_table_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"text/template"
)

const tmplSrc = `// Code generated by internal/gen/gendecode.go; DO NOT EDIT.

package qmx

// decodeOp dispatches a single key byte to the selector's unit unpacker.
// The high nibble selects among the 15 legal selectors (0..14); nibble 15
// is reserved and always illegal. The low nibble encodes batch-1 inverted
// (~(batch-1) & 0x0F): nibble 15 means batch 1 (one processUnit call),
// nibble 0 means batch 16 (all sixteen).
//
// Go's switch jumps straight to the matching case and fallthrough only
// continues into the next case *as written in source*, independent of that
// case's own label — so the entry case has to be the one whose body decides
// the call count, not whatever case happens to sit last in source. Cases are
// therefore emitted in ascending nibble order (0 first, 15 last): entering
// at nibble N runs 16-N processUnit calls by falling through
// case N, N+1, ..., up to case 15, which is the only terminal (plain return,
// no fallthrough) case. Entering directly at nibble 15 runs exactly one
// processUnit call, matching batch 1; entering at nibble 0 falls through
// all sixteen cases, matching batch 16. The fallthrough only stops early on
// c.remaining (the real values left in the whole logical stream), never on
// the current call's destination capacity: a batch is always decoded to
// completion so later Decode/Decoder.Decode calls don't lose units whose
// payload bytes already scrolled past the input cursor.
func decodeOp(op byte, c *decodeCursor) {
	sel := op >> 4
	nibble := op & 0x0F

	if sel == 15 {
		illegalSelector(c)
		return
	}

	switch nibble {
{{- range .Cases }}
	case {{ .Nibble }}:
		processUnit(sel, c)
		{{- if .Last }}
		return
		{{- else }}
		if c.err != nil || c.remaining <= 0 {
			return
		}
		fallthrough
		{{- end }}
{{- end }}
	}
}
`

type caseData struct {
	Nibble int
	Last   bool
}

func main() {
	out := flag.String("out", "decode_table_gen.go", "output file path")
	flag.Parse()

	cases := make([]caseData, 0, 16)
	for n := 0; n <= 15; n++ {
		cases = append(cases, caseData{Nibble: n, Last: n == 15})
	}

	tmpl := template.Must(template.New("decodeOp").Parse(tmplSrc))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Cases []caseData }{Cases: cases}); err != nil {
		fmt.Fprintln(os.Stderr, "gendecode:", err)
		os.Exit(1)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "gendecode: formatting generated source:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "gendecode:", err)
		os.Exit(1)
	}
}
