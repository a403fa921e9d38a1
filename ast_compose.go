package cdecl

// ast_compose.go implements §4.2.2-§4.2.4's depth-based precedence: a
// gibberish declarator is built inside-out by the parser (innermost
// identifier first), and each wrapping operator must graft itself at
// the correct point in the already-built chain depending on how many
// parentheses separated it from the identifier. This mirrors the
// teacher's grammar_compiler.go pattern of a small set of composition
// primitives called repeatedly by the parser rather than the parser
// building the tree directly with struct literals.

// addArray wraps `of` in a new array-of dimension, honoring C's
// left-to-right array-of-array reading: a bracket that follows another
// bracket at the same depth becomes the *inner* dimension, so
// `a[3][4]` is "array 3 of array 4"; a pointer or reference recorded
// at a deeper parenthesization level than the bracket is descended
// into, and anything else is wrapped from outside (§4.2.2). The same
// rule governs a bracket trailing a bare, unparenthesized pointer:
// `int *a[3]` is "array of pointer" (the bracket binds to the
// identifier tighter than the prefix `*`), while `int (*a)[3]` is
// "pointer to array" (the parens around `*a` outrank the bracket).
func (a *Arena) addArray(of NodeID, size int, nonEmpty bool, qual TypeBits, depth int, sp Span) NodeID {
	if a.Kind(of) == NodeArray && a.Depth(of) == depth {
		inner := a.addArray(a.Child(of), size, nonEmpty, qual, depth, sp)
		return a.replaceChild(of, inner)
	}
	switch a.Kind(of) {
	case NodePointer, NodeReference, NodeRvalueReference:
		if a.Depth(of) > depth {
			inner := a.addArray(a.Child(of), size, nonEmpty, qual, depth, sp)
			return a.replaceChild(of, inner)
		}
	}
	arr := a.NewArray(of, size, nonEmpty, qual, depth, sp)
	migrateStorageToWrapper(a, of, arr)
	return arr
}

// addFunction is addArray's function-declarator counterpart (§4.2.3):
// `int (*f())()` binds the outer `()` to the pointer's target only
// when the pointer sat inside one more level of parenthesization than
// the trailing `()` did; otherwise the new function wraps outward.
func (a *Arena) addFunction(ret NodeID, params []Param, variadic bool, bits TypeBits, depth int, sp Span) NodeID {
	switch a.Kind(ret) {
	case NodePointer, NodeReference, NodeRvalueReference:
		if a.Depth(ret) > depth {
			inner := a.addFunction(a.Child(ret), params, variadic, bits, depth, sp)
			return a.replaceChild(ret, inner)
		}
	}
	fn := a.NewFunction(ret, params, variadic, bits, depth, sp)
	migrateStorageToWrapper(a, ret, fn)
	return fn
}

// migrateStorageToWrapper moves any non-qualifier storage bits
// (storage class, linkage, and similar declaration-wide keywords --
// everything except the cv-qualifiers in qualifierBits) from a base
// node directly wrapped by a new array/function node up onto that
// wrapper (§4.2.2/§4.2.3): `static int x[4]` must print "static array
// 4 of int", not "array 4 of static int", since `static` describes the
// declared object x, not the array's element type. of is only ever a
// base-kind node here when the new wrapper sits directly against the
// specifier sequence's own leaf; deeper nesting (e.g. a pointer
// between the leaf and the wrapper) leaves storage where it already
// is, since by then it no longer describes the wrapper either.
func migrateStorageToWrapper(a *Arena, of, wrapper NodeID) {
	switch a.Kind(of) {
	case NodeBuiltin, NodeTypedefRef, NodeEnum, NodeClass, NodeStruct, NodeUnion:
	default:
		return
	}
	elemBits := a.Bits(of).Clone()
	wrapperBits := a.Bits(wrapper).Clone()
	moved := false
	for s := StorageBit(1); s < numStorageBits; s++ {
		if isQualifierStorageBit(s) || !elemBits.Storage.Test(uint(s)) {
			continue
		}
		elemBits.Storage.Clear(uint(s))
		wrapperBits.Storage.Set(uint(s))
		moved = true
	}
	if !moved {
		return
	}
	a.SetBits(of, elemBits)
	a.SetBits(wrapper, wrapperBits)
}

// baseBitsOf returns id's own TypeBits when it is a plain base node
// (a builtin or a resolved typedef, no pointer/array/function
// wrapping), for checks that only care about a parameter or return
// type's base, such as CheckMainSignature's "must return int".
func baseBitsOf(a *Arena, id NodeID) (TypeBits, bool) {
	switch a.Kind(id) {
	case NodeBuiltin, NodeTypedefRef:
		return a.Bits(id), true
	}
	return TypeBits{}, false
}

func isQualifierStorageBit(s StorageBit) bool {
	for _, q := range qualifierBits {
		if q == s {
			return true
		}
	}
	return false
}

// replaceChild returns a new node identical to id but pointing at
// child, since Arena nodes are otherwise treated as immutable once
// another node may already reference them structurally (arrays of
// arrays are built by recursing on copies, not by mutating a shared
// node in place).
func (a *Arena) replaceChild(id, child NodeID) NodeID {
	n := a.nodes[id]
	n.child = child
	return a.add(n)
}

// patchPlaceholder resolves a NodeNamePlaceholder produced for a bare
// identifier once the parser learns, by consulting the typedef table,
// whether that identifier is a previously declared type name or the
// name being declared (§4.2.4). When it is a known typedef, the
// placeholder becomes a NodeTypedefRef carrying the typedef's own
// bits; otherwise the node is left unchanged and its text returned
// (the text becomes the declaration's name, tracked by the caller, not
// by the AST, and the caller turns the node into the base-type node).
func patchPlaceholder(a *Arena, id NodeID, td *TypedefTable) (resolvedName string, isTypedef bool) {
	if a.Kind(id) != NodeNamePlaceholder {
		return "", false
	}
	text := a.Name(id).Local
	if def, ok := td.Lookup(text); ok {
		a.nodes[id].kind = NodeTypedefRef
		a.nodes[id].bits = def.Bits
		return text, true
	}
	return text, false
}

// innermostDeclaredName walks to the placeholder carrying the name
// actually being declared -- the one NodeNamePlaceholder in a fully
// parsed declarator that patchPlaceholder left unresolved (§4.2.4).
// Returns "" for an abstract declarator (one with no name, e.g. a
// cast-style "pointer to int").
func innermostDeclaredName(a *Arena, id NodeID) string {
	var found string
	Inspect(a, id, func(n NodeID) bool {
		if a.Kind(n) == NodeNamePlaceholder {
			found = a.Name(n).Local
			return false
		}
		return true
	})
	return found
}
