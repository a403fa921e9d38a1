package cdecl

// ast.go is the declarator AST's arena (§3 "Declarator node"),
// grounded on the teacher's tree.go: a flat slice of fixed-size
// structs indexed by an integer ID rather than a pointer tree, so a
// whole parse can be discarded by truncating one slice (tree.go's
// reset()) instead of walking pointers for the GC. Unlike tree.go's
// four generic parse-tree shapes (String/Sequence/Node/Error), our
// node carries one of the domain's declarator kinds directly, since
// every node here already has fixed domain meaning by the time it is
// created (the PEG grammar's generic shapes exist to be interpreted
// later by grammar_ast.go; we have no such intermediate stage).

// NodeID indexes into an Arena; ids are handed out from 0. NoNode (-1)
// means "no node", the way tree.go's -1 reserves "no child".
type NodeID int32

const NoNode NodeID = -1

// NodeKind tags the declarator node variants of §3.
type NodeKind uint8

const (
	NodeBuiltin NodeKind = iota
	NodePointer
	NodeArray
	NodeFunction
	NodeReference
	NodeRvalueReference
	NodeEnum
	NodeClass
	NodeStruct
	NodeUnion
	NodePointerToMember
	NodeTypedefRef
	NodeNamePlaceholder // unresolved `name` awaiting patch_placeholder (§4.2.4)
	NodeVariadic        // the bare `...` parameter
	NodeAppleBlock
	NodeOperator
	NodeConstructor
	NodeDestructor
	NodeUserDefinedConversion
	NodeUserDefinedLiteral
)

func (k NodeKind) String() string {
	names := [...]string{
		"builtin", "pointer", "array", "function", "reference",
		"rvalue-reference", "enum", "class", "struct", "union",
		"pointer-to-member", "typedef", "name", "variadic",
		"apple-block", "operator", "constructor", "destructor",
		"user-defined-conversion", "user-defined-literal",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// ArraySize encodes an array node's bracket contents (§3, §4.1 "static
// N" special case): Unspecified is `[]`, VariableLength is C99's
// `[*]`, and a non-negative value is a literal element count.
const (
	ArrayUnspecified    = -1
	ArrayVariableLength = -2
)

// Param is one function-declarator parameter: its declarator subtree
// plus the optional name a human would attach to it in source.
type Param struct {
	Name string
	Type NodeID
}

// AlignKind tags an Alignment's payload (§3 "alignment": "none |
// integer | type-referenced").
type AlignKind uint8

const (
	AlignNone AlignKind = iota
	AlignInteger
	AlignType
)

// Alignment is a declaration's `alignas` operand, if any. It is
// recorded on the outermost declarator node (ParseGibberishDeclaration),
// not threaded through every layer, since `alignas` binds to the
// declaration as a whole rather than to any one pointer/array/function
// node in its chain.
type Alignment struct {
	Kind  AlignKind
	Value int    // AlignInteger: the operand, already checked a power of two
	Type  NodeID // AlignType: alignas(T)'s type node
}

// node is the Arena's flat per-ID payload. Every field is meaningful
// only for a subset of kinds, mirroring tree.go's node struct (whose
// fields are similarly kind-dependent, e.g. childID means different
// things for NodeType_Node vs NodeType_Sequence).
type node struct {
	kind  NodeKind
	bits  TypeBits
	name  ScopedName
	child NodeID // pointee / element / return type; NoNode for a leaf

	arraySize   int
	nonEmpty    bool // C99 `static N` inside `[...]` (§3 "Special cases")
	params      []Param
	variadic    bool
	ownerClass  ScopedName // pointer-to-member / constructor / destructor owning class
	litSuffix   string     // user-defined-literal suffix identifier
	convTarget  NodeID     // user-defined-conversion operator's target type

	depth int // parenthesization depth at creation (§4.2.2-4.2.4)
	span  Span

	parent    NodeID // weak back-link, filled in by add() from Children(id)
	alignment Alignment
}

// Arena owns every node parsed or synthesized for one command (§5:
// "one arena per command"). Nothing outlives Session.Eval.
type Arena struct {
	nodes []node
	root  NodeID
}

func NewArena() *Arena {
	return &Arena{nodes: make([]node, 0, 32), root: NoNode}
}

func (a *Arena) Root() NodeID     { return a.root }
func (a *Arena) SetRoot(id NodeID) { a.root = id }

// add appends n and back-links its children's parent pointer to the
// new id -- the one place every constructor in this file funnels
// through, so no NewXxx helper needs to set `parent` itself.
func (a *Arena) add(n node) NodeID {
	n.parent = NoNode
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, n)
	for _, c := range a.Children(id) {
		a.nodes[c].parent = id
	}
	return id
}

func (a *Arena) at(id NodeID) *node { return &a.nodes[id] }

func (a *Arena) Kind(id NodeID) NodeKind   { return a.nodes[id].kind }
func (a *Arena) Bits(id NodeID) TypeBits   { return a.nodes[id].bits }
func (a *Arena) Name(id NodeID) ScopedName { return a.nodes[id].name }
func (a *Arena) Child(id NodeID) NodeID    { return a.nodes[id].child }
func (a *Arena) Span(id NodeID) Span       { return a.nodes[id].span }
func (a *Arena) Depth(id NodeID) int       { return a.nodes[id].depth }
func (a *Arena) Params(id NodeID) []Param  { return a.nodes[id].params }
func (a *Arena) Variadic(id NodeID) bool   { return a.nodes[id].variadic }
func (a *Arena) ArraySize(id NodeID) int   { return a.nodes[id].arraySize }
func (a *Arena) NonEmpty(id NodeID) bool   { return a.nodes[id].nonEmpty }
func (a *Arena) OwnerClass(id NodeID) ScopedName { return a.nodes[id].ownerClass }
func (a *Arena) LitSuffix(id NodeID) string      { return a.nodes[id].litSuffix }
func (a *Arena) ConvTarget(id NodeID) NodeID      { return a.nodes[id].convTarget }
func (a *Arena) Parent(id NodeID) NodeID         { return a.nodes[id].parent }
func (a *Arena) Alignment(id NodeID) Alignment   { return a.nodes[id].alignment }

// NewBuiltin creates a leaf node for a built-in type, an ECSU tag
// reference, or a resolved typedef name (§3: Base/Storage/Attr bits
// with no child).
func (a *Arena) NewBuiltin(bits TypeBits, name ScopedName, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeBuiltin, bits: bits, name: name, child: NoNode, depth: depth, span: sp})
}

func (a *Arena) NewTypedefRef(name ScopedName, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeTypedefRef, name: name, child: NoNode, depth: depth, span: sp})
}

// NewNamePlaceholder creates the unresolved `name` node the parser
// emits for a bare identifier until patch_placeholder (ast_compose.go)
// decides whether it is a declared name or a typedef'd type (§4.2.4).
func (a *Arena) NewNamePlaceholder(text string, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeNamePlaceholder, name: NewScopedName(text), child: NoNode, depth: depth, span: sp})
}

func (a *Arena) NewPointer(to NodeID, bits TypeBits, depth int, sp Span) NodeID {
	return a.add(node{kind: NodePointer, bits: bits, child: to, depth: depth, span: sp})
}

func (a *Arena) NewReference(to NodeID, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeReference, child: to, depth: depth, span: sp})
}

func (a *Arena) NewRvalueReference(to NodeID, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeRvalueReference, child: to, depth: depth, span: sp})
}

func (a *Arena) NewArray(of NodeID, size int, nonEmpty bool, qual TypeBits, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeArray, child: of, arraySize: size, nonEmpty: nonEmpty, bits: qual, depth: depth, span: sp})
}

func (a *Arena) NewFunction(ret NodeID, params []Param, variadic bool, bits TypeBits, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeFunction, child: ret, params: params, variadic: variadic, bits: bits, depth: depth, span: sp})
}

func (a *Arena) NewVariadic(sp Span) NodeID {
	return a.add(node{kind: NodeVariadic, child: NoNode, span: sp})
}

func (a *Arena) NewAppleBlock(ret NodeID, params []Param, depth int, sp Span) NodeID {
	return a.add(node{kind: NodeAppleBlock, child: ret, params: params, depth: depth, span: sp})
}

func (a *Arena) NewPointerToMember(to NodeID, owner ScopedName, bits TypeBits, depth int, sp Span) NodeID {
	return a.add(node{kind: NodePointerToMember, child: to, ownerClass: owner, bits: bits, depth: depth, span: sp})
}

func (a *Arena) NewECSU(kind NodeKind, name ScopedName, bits TypeBits, depth int, sp Span) NodeID {
	return a.add(node{kind: kind, name: name, bits: bits, child: NoNode, depth: depth, span: sp})
}

func (a *Arena) NewOperator(name ScopedName, owner ScopedName, params []Param, ret NodeID, bits TypeBits, sp Span) NodeID {
	return a.add(node{kind: NodeOperator, name: name, ownerClass: owner, params: params, child: ret, bits: bits, span: sp})
}

func (a *Arena) NewConstructor(owner ScopedName, params []Param, bits TypeBits, sp Span) NodeID {
	return a.add(node{kind: NodeConstructor, ownerClass: owner, params: params, bits: bits, child: NoNode, span: sp})
}

func (a *Arena) NewDestructor(owner ScopedName, bits TypeBits, sp Span) NodeID {
	return a.add(node{kind: NodeDestructor, ownerClass: owner, bits: bits, child: NoNode, span: sp})
}

func (a *Arena) NewUserDefinedConversion(owner ScopedName, target NodeID, bits TypeBits, sp Span) NodeID {
	return a.add(node{kind: NodeUserDefinedConversion, ownerClass: owner, convTarget: target, bits: bits, child: NoNode, span: sp})
}

func (a *Arena) NewUserDefinedLiteral(params []Param, ret NodeID, suffix string, sp Span) NodeID {
	return a.add(node{kind: NodeUserDefinedLiteral, params: params, child: ret, litSuffix: suffix, span: sp})
}

// SetChild rewires id's child pointer; used by ast_compose.go when a
// placeholder resolves or an outer declarator wraps an inner one.
func (a *Arena) SetChild(id, child NodeID) {
	a.nodes[id].child = child
	if child != NoNode {
		a.nodes[child].parent = id
	}
}
func (a *Arena) SetBits(id NodeID, bits TypeBits) { a.nodes[id].bits = bits }
func (a *Arena) SetName(id NodeID, name ScopedName) { a.nodes[id].name = name }
func (a *Arena) SetAlignment(id NodeID, al Alignment) { a.nodes[id].alignment = al }
