package cdecl

import (
	"fmt"
	"strings"
)

// macro_trace.go builds the indented expansion trace (§4.6.4) that
// `expand` returns alongside its result, reusing tree_printer.go's indent/unindent
// bookkeeping the same way ast_print_tree.go does for the declarator
// dump -- one generic indentation helper serving two unrelated
// printers, as in the teacher's own pretty-printer/grammar-printer
// pair sharing treePrinter[T].
type traceToken int

const traceNone traceToken = 0

type expandTrace struct {
	*treePrinter[traceToken]
}

func newExpandTrace() *expandTrace {
	return &expandTrace{treePrinter: newTreePrinter(func(s string, _ traceToken) string { return s })}
}

func (t *expandTrace) enter(name, body string) {
	t.pwritel(fmt.Sprintf("%s -> %s", name, escapeLiteral(body)))
	t.indent("  ")
}

func (t *expandTrace) exit() {
	t.unindent()
}

func (t *expandTrace) String() string {
	return strings.TrimRight(t.output.String(), "\n")
}
