package cdecl

// ast_visit.go adapts grammar_ast_visitor.go's two traversal styles to
// the arena: a full Visitor interface for the checker passes that need
// one method per node kind (§4.3's "two cooperating visitor passes"),
// and an Inspect helper for call sites that only care about a couple
// of kinds, the same relationship WalkGrammarNode/Inspect have in the
// teacher.

// Children returns id's immediate child declarator nodes, in the
// order a printer should visit them: the node's `child` if it has one,
// then the type of each parameter (functions, operators, literal
// operators, constructors, blocks), then a conversion operator's
// target type. NodeDestructor and NodeVariadic have none.
func (a *Arena) Children(id NodeID) []NodeID {
	n := &a.nodes[id]
	var out []NodeID
	if n.child != NoNode {
		out = append(out, n.child)
	}
	for _, p := range n.params {
		out = append(out, p.Type)
	}
	if n.kind == NodeUserDefinedConversion && n.convTarget != NoNode {
		out = append(out, n.convTarget)
	}
	return out
}

// Visitor is implemented by each of the three checker passes
// (check_structural.go, check_typing.go, check_warning.go). Every
// method receives the node's id so it can re-query the Arena for
// bits/name/params without the visitor needing its own copy.
type Visitor interface {
	VisitBuiltin(a *Arena, id NodeID) *Diagnostic
	VisitPointer(a *Arena, id NodeID) *Diagnostic
	VisitArray(a *Arena, id NodeID) *Diagnostic
	VisitFunction(a *Arena, id NodeID) *Diagnostic
	VisitReference(a *Arena, id NodeID) *Diagnostic
	VisitECSU(a *Arena, id NodeID) *Diagnostic
	VisitPointerToMember(a *Arena, id NodeID) *Diagnostic
	VisitTypedefRef(a *Arena, id NodeID) *Diagnostic
	VisitSpecialMember(a *Arena, id NodeID) *Diagnostic // constructor/destructor/conversion/operator/UDL
}

// Walk visits id's subtree post-order (children before parent), the
// order both checker passes need since a node's legality can depend
// on what its child turned out to be (e.g. "pointer to reference" is
// only knowable once the reference child has been visited). The walk
// stops at the first non-nil Diagnostic, mirroring §4.3's "a
// structural/typing error stops that pass".
func Walk(v Visitor, a *Arena, id NodeID) *Diagnostic {
	if id == NoNode {
		return nil
	}
	for _, c := range a.Children(id) {
		if d := Walk(v, a, c); d != nil {
			return d
		}
	}
	return dispatch(v, a, id)
}

func dispatch(v Visitor, a *Arena, id NodeID) *Diagnostic {
	switch a.Kind(id) {
	case NodeBuiltin:
		return v.VisitBuiltin(a, id)
	case NodePointer:
		return v.VisitPointer(a, id)
	case NodeArray:
		return v.VisitArray(a, id)
	case NodeFunction, NodeAppleBlock:
		return v.VisitFunction(a, id)
	case NodeReference, NodeRvalueReference:
		return v.VisitReference(a, id)
	case NodeEnum, NodeClass, NodeStruct, NodeUnion:
		return v.VisitECSU(a, id)
	case NodePointerToMember:
		return v.VisitPointerToMember(a, id)
	case NodeTypedefRef, NodeNamePlaceholder:
		return v.VisitTypedefRef(a, id)
	case NodeConstructor, NodeDestructor, NodeUserDefinedConversion,
		NodeOperator, NodeUserDefinedLiteral, NodeVariadic:
		return v.VisitSpecialMember(a, id)
	default:
		return nil
	}
}

// Inspect traverses id's subtree pre-order, calling f for every node
// until f returns false for a node (skipping its children) or the
// subtree is exhausted — the arena counterpart of
// grammar_ast_visitor.go's Inspect, minus the cycle guard that file
// needs for its pointer-linked AST (an Arena's NodeIDs are strictly
// increasing by construction, so no node can be its own ancestor).
func Inspect(a *Arena, id NodeID, f func(NodeID) bool) {
	if id == NoNode || !f(id) {
		return
	}
	for _, c := range a.Children(id) {
		Inspect(a, c, f)
	}
}

// Direction selects which way Visit walks from a starting node.
type Direction int

const (
	DirDown Direction = iota
	DirUp
)

// Visit walks from id in the given direction, calling f at each node
// until f returns false or the walk runs out of nodes. DirDown is
// Inspect's pre-order descent. DirUp walks from id to the root along
// the parent back-link -- the direction a caller needs to answer
// "what does this node end up nested inside", such as the declarator
// leaf asking whether it was wrapped in an array or function before
// its storage bits can be migrated onto that wrapper.
func Visit(a *Arena, id NodeID, dir Direction, f func(NodeID) bool) {
	if dir == DirUp {
		for cur := id; cur != NoNode; cur = a.Parent(cur) {
			if !f(cur) {
				return
			}
		}
		return
	}
	Inspect(a, id, f)
}
