package cdecl

import (
	"fmt"
	"strings"
)

// print_gibberish.go renders an Arena declarator back into C/C++
// surface syntax (§4.4), sharing the AST with print_english.go the way
// the teacher's two AstNodeVisitor implementations (grammar_ast_printer.go
// and the source-reconstructing printer query_source_map.go leans on)
// share one AST. East/west const placement is controlled by
// Options.EastConst.
type GibberishPrinter struct {
	opts *Options
}

func NewGibberishPrinter(opts *Options) *GibberishPrinter { return &GibberishPrinter{opts: opts} }

// Print renders `name declarator-of(id)`, e.g. "int *x" or
// "int (*f)(void)". An abstract declarator (name == "") omits the
// name and any surrounding space it would need.
func (gp *GibberishPrinter) Print(a *Arena, id NodeID, name string) string {
	baseBits, stars := gp.splitBase(a, id)
	decl := gp.printDeclarator(a, stars, name)
	if decl == "" {
		return baseBits
	}
	return baseBits + " " + decl
}

// splitBase descends to the innermost base/ECSU/typedef node, since
// the gibberish specifier sequence always prints once, up front,
// regardless of how many pointer/array/function layers wrap it; stars
// is the remaining (outer) declarator chain to print around the name.
func (gp *GibberishPrinter) splitBase(a *Arena, id NodeID) (string, NodeID) {
	cur := id
	for {
		switch a.Kind(cur) {
		case NodeBuiltin, NodeTypedefRef, NodeEnum, NodeClass, NodeStruct, NodeUnion, NodeNamePlaceholder:
			return gp.printBase(a, cur), id
		}
		if a.Child(cur) == NoNode {
			return "", id
		}
		cur = a.Child(cur)
	}
}

func (gp *GibberishPrinter) printBase(a *Arena, id NodeID) string {
	bits := a.Bits(id)
	name := a.Name(id)
	east := ""
	for _, s := range qualifierBits {
		if gp.opts != nil && gp.opts.EastConst && bits.HasStorage(s) {
			bits = bits.Clone()
			bits.Storage.Clear(uint(s))
			east += " " + storageNames[s]
		}
	}
	word := nameC(bits)
	switch a.Kind(id) {
	case NodeEnum, NodeClass, NodeStruct, NodeUnion, NodeTypedefRef:
		if name.Local != "" {
			if word != "" {
				return word + " " + name.String() + east
			}
			return name.String() + east
		}
	}
	if word == "" {
		return "int" + east
	}
	return word + east
}

// printDeclarator prints the pointer/reference/array/function chain
// wrapping id, working outside-in from the root: a `*`/`&`/`&&`
// layer grows the "name expression" (parenthesizing it first if its
// child is an array or function, since `*x[3]` means "array of
// pointer" while `(*x)[3]` means "pointer to array", §4.4) and hands
// that whole expression down as the next `name` -- an array/function
// child then appends its own suffix *outside* whatever parens the
// layer above it just added, rather than having those parens added
// around a suffix that was already printed.
func (gp *GibberishPrinter) printDeclarator(a *Arena, id NodeID, name string) string {
	switch a.Kind(id) {
	case NodeBuiltin, NodeTypedefRef, NodeEnum, NodeClass, NodeStruct, NodeUnion, NodeNamePlaceholder:
		return name

	case NodePointer:
		text := "*" + gp.qualSuffix(a.Bits(id)) + name
		return gp.printDeclarator(a, a.Child(id), gp.parenIfNeeded(a, a.Child(id), text))

	case NodeReference:
		text := "&" + name
		return gp.printDeclarator(a, a.Child(id), gp.parenIfNeeded(a, a.Child(id), text))

	case NodeRvalueReference:
		text := "&&" + name
		return gp.printDeclarator(a, a.Child(id), gp.parenIfNeeded(a, a.Child(id), text))

	case NodePointerToMember:
		owner := a.OwnerClass(id)
		text := owner.String() + "::*" + name
		return gp.printDeclarator(a, a.Child(id), gp.parenIfNeeded(a, a.Child(id), text))

	case NodeArray:
		inner := gp.printDeclarator(a, a.Child(id), name)
		return inner + gp.printArraySuffix(a, id)

	case NodeFunction, NodeAppleBlock:
		inner := gp.printDeclarator(a, a.Child(id), name)
		return inner + gp.printParamSuffix(a, id)
	}
	return name
}

func (gp *GibberishPrinter) qualSuffix(bits TypeBits) string {
	s := nameC(bits)
	if s == "" {
		return ""
	}
	return " " + s
}

// parenIfNeeded parens `text` when `child` is an array or function
// node, since that child will append its own `[]`/`()` suffix after
// `text` is handed down to it -- the parens must already be in place
// around `text` so the suffix lands outside them.
func (gp *GibberishPrinter) parenIfNeeded(a *Arena, child NodeID, text string) string {
	switch a.Kind(child) {
	case NodeArray, NodeFunction, NodeAppleBlock:
		return "(" + text + ")"
	}
	return text
}

func (gp *GibberishPrinter) printArraySuffix(a *Arena, id NodeID) string {
	var b strings.Builder
	b.WriteByte('[')
	if a.NonEmpty(id) {
		b.WriteString("static ")
	}
	switch a.ArraySize(id) {
	case ArrayUnspecified:
	case ArrayVariableLength:
		b.WriteByte('*')
	default:
		fmt.Fprintf(&b, "%d", a.ArraySize(id))
	}
	b.WriteByte(']')
	return b.String()
}

func (gp *GibberishPrinter) printParamSuffix(a *Arena, id NodeID) string {
	params := a.Params(id)
	var parts []string
	for _, p := range params {
		if p.Type == NoNode {
			parts = append(parts, "...")
			continue
		}
		ptext := gp.Print(a, p.Type, p.Name)
		parts = append(parts, ptext)
	}
	if a.Variadic(id) && (len(parts) == 0 || parts[len(parts)-1] != "...") {
		parts = append(parts, "...")
	}
	if len(parts) == 0 {
		parts = []string{"void"}
	}
	s := "(" + strings.Join(parts, ", ") + ")"
	if qual := nameC(a.Bits(id)); qual != "" {
		s += " " + qual
	}
	return s
}
