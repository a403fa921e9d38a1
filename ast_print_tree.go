package cdecl

import "fmt"

// ast_print_tree.go is the `debug` setting's tree dump (§6.4), grounded
// on grammar_ast_printer.go: reuse tree_printer.go's generic
// treePrinter[T] for indentation/box-drawing and a small color theme
// keyed by a token type, exactly as the teacher's grammarPrinter does
// for its own AST.

type DumpToken int

const (
	DumpNone DumpToken = iota
	DumpSpan
	DumpKind
	DumpBits
)

var dumpTheme = map[DumpToken]string{
	DumpNone: "\033[0m",
	DumpSpan: "\033[1;31;5;228m",
	DumpKind: "\033[1;38;5;99m",
	DumpBits: "\033[1;38;5;127m",
}

// DumpTree renders id's subtree as a box-drawing tree, the same shape
// `explain`'s --debug companion view uses. color selects the teacher's
// ANSI theme; callers pass Options.Color.
func DumpTree(a *Arena, id NodeID, color bool) string {
	format := func(s string, tok DumpToken) string { return s }
	if color {
		format = func(s string, tok DumpToken) string {
			return dumpTheme[tok] + s + dumpTheme[DumpNone]
		}
	}
	tp := newTreePrinter(format)
	dp := &treeDumper{treePrinter: tp, arena: a}
	dp.visit(id)
	return dp.output.String()
}

type treeDumper struct {
	*treePrinter[DumpToken]
	arena *Arena
}

func (d *treeDumper) visit(id NodeID) {
	if id == NoNode {
		d.write(d.format("<none>", DumpNone))
		return
	}
	a := d.arena
	label := a.Kind(id).String()
	if bits := nameC(a.Bits(id)); bits != "" {
		label += " " + bits
	}
	if n := a.Name(id); n.Local != "" {
		label += " `" + n.String() + "`"
	}
	d.write(d.format(label, DumpKind))
	d.writel(d.format(fmt.Sprintf(" (%s)", a.Span(id)), DumpSpan))

	children := d.arena.Children(id)
	for i, c := range children {
		last := i == len(children)-1
		if last {
			d.pwrite("└── ")
			d.indent("    ")
		} else {
			d.pwrite("├── ")
			d.indent("│   ")
		}
		d.visit(c)
		d.unindent()
		if !last {
			d.write("\n")
		}
	}
}
