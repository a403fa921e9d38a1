package cdecl

// TypedefTable is one of the session's three persistent tables (§5):
// every `typedef`/`using` accepted so far, keyed by name. Grounded on
// the teacher's query_grammar.go caching a GrammarNode per name — ours
// is simpler (no invalidation needed; a command can only add, never
// edit, a typedef) so it is a plain map guarded by insertion order for
// `show typedefs`.
type TypedefTable struct {
	byName map[string]*TypedefEntry
	order  []string
}

// TypedefEntry is what a typedef/using binds a name to: the
// declarator subtree it names (so re-expanding it elsewhere clones
// the same structure) and the flattened bits a reference to it should
// carry at the point of use.
type TypedefEntry struct {
	Name  string
	Arena *Arena // the arena the Declarator subtree lives in
	Decl  NodeID
	Bits  TypeBits
	Span  Span
}

func NewTypedefTable() *TypedefTable {
	return &TypedefTable{byName: make(map[string]*TypedefEntry)}
}

// Lookup reports whether name was previously defined.
func (t *TypedefTable) Lookup(name string) (*TypedefEntry, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// Define records a new typedef, rejecting a redefinition with
// incompatible bits (§4.1's typedef-table invariant: a name may be
// redefined only with an identical type, matching C11/C++'s
// redundant-typedef rule).
func (t *TypedefTable) Define(e *TypedefEntry) *Diagnostic {
	if prior, ok := t.byName[e.Name]; ok {
		if !sameTypedefType(prior, e) {
			d := errf("typedef", e.Span, "",
				"`%s` already declared as a different type", e.Name)
			return &d
		}
		return nil
	}
	t.byName[e.Name] = e
	t.order = append(t.order, e.Name)
	return nil
}

func sameTypedefType(a, b *TypedefEntry) bool {
	return nameC(a.Bits) == nameC(b.Bits) && sameDeclaratorShape(a.Arena, a.Decl, b.Arena, b.Decl)
}

// sameDeclaratorShape structurally compares two declarator subtrees,
// ignoring source spans and parenthesization depth (only the printed
// shape, not how it was typed, matters for redefinition-compatibility).
func sameDeclaratorShape(a1 *Arena, id1 NodeID, a2 *Arena, id2 NodeID) bool {
	if id1 == NoNode || id2 == NoNode {
		return id1 == id2
	}
	if a1.Kind(id1) != a2.Kind(id2) {
		return false
	}
	if nameC(a1.Bits(id1)) != nameC(a2.Bits(id2)) {
		return false
	}
	// Kind and bits alone don't distinguish two arrays of different
	// bound or two functions differing only in trailing `...` --
	// those live in dedicated fields Children() doesn't surface.
	switch a1.Kind(id1) {
	case NodeArray:
		if a1.ArraySize(id1) != a2.ArraySize(id2) || a1.NonEmpty(id1) != a2.NonEmpty(id2) {
			return false
		}
	case NodeFunction, NodeAppleBlock:
		if a1.Variadic(id1) != a2.Variadic(id2) {
			return false
		}
	}
	c1, c2 := a1.Children(id1), a2.Children(id2)
	if len(c1) != len(c2) {
		return false
	}
	for i := range c1 {
		if !sameDeclaratorShape(a1, c1[i], a2, c2[i]) {
			return false
		}
	}
	return true
}

// Names returns every defined name in definition order, for `show
// typedefs`.
func (t *TypedefTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
