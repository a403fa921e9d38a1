package cdecl

// check_typing.go is §4.3's second checker pass: given the session's
// selected dialect, reject a node whose bits (or whose kind, for
// dialect-gated node shapes like rvalue references) aren't legal in
// it, and enforce the cross-bit rules that aren't expressible as a
// single bit's own legality table (member-only qualifiers, mutually
// exclusive calling conventions).
type typingChecker struct {
	dialect Dialect
	// memberFn holds every Function node reached through a
	// pointer-to-member (the only shape this grammar has for "a
	// non-static member function") -- member-only storage bits are
	// only legal there (§4.3.2). Computed top-down before the bottom-up
	// Walk, since Walk visits a function's own node before the
	// PointerToMember wrapping it.
	memberFn map[NodeID]bool
}

func newTypingChecker(d Dialect, memberFn map[NodeID]bool) *typingChecker {
	return &typingChecker{dialect: d, memberFn: memberFn}
}

// CheckTyping runs the typing pass over id's subtree for the given
// dialect.
func CheckTyping(a *Arena, id NodeID, d Dialect) *Diagnostic {
	memberFn := make(map[NodeID]bool)
	markMemberFunctions(a, id, false, memberFn)
	return Walk(newTypingChecker(d, memberFn), a, id)
}

// markMemberFunctions walks top-down marking every Function node
// nested under a PointerToMember so the bottom-up typing pass can
// tell a member function's own node apart from a free function's,
// something post-order Walk can't see on its own.
func markMemberFunctions(a *Arena, id NodeID, inMember bool, out map[NodeID]bool) {
	if id == NoNode {
		return
	}
	if inMember && a.Kind(id) == NodeFunction {
		out[id] = true
	}
	childMember := inMember || a.Kind(id) == NodePointerToMember
	for _, c := range a.Children(id) {
		markMemberFunctions(a, c, childMember, out)
	}
}

func (c *typingChecker) checkBits(a *Arena, id NodeID, bits TypeBits) *Diagnostic {
	legal := check(bits)
	if !legal.Has(c.dialect) {
		d := errf("typing", a.Span(id), "choose a different dialect with `set`",
			"`%s` is not legal in %s", nameError(bits, false), c.dialect)
		return &d
	}
	return nil
}

func (c *typingChecker) VisitBuiltin(a *Arena, id NodeID) *Diagnostic {
	return c.checkBits(a, id, a.Bits(id))
}

func (c *typingChecker) VisitPointer(a *Arena, id NodeID) *Diagnostic {
	return c.checkBits(a, id, a.Bits(id))
}

func (c *typingChecker) VisitArray(a *Arena, id NodeID) *Diagnostic {
	if a.NonEmpty(id) && !c.dialect.AtLeastC(DialectC99) {
		d := errf("typing", a.Span(id), "", "`static` array bound requires C99 or later")
		return &d
	}
	if a.ArraySize(id) == ArrayVariableLength && !c.dialect.AtLeastC(DialectC99) {
		d := errf("typing", a.Span(id), "", "a variable length array requires C99 or later")
		return &d
	}
	return c.checkBits(a, id, a.Bits(id))
}

func (c *typingChecker) VisitFunction(a *Arena, id NodeID) *Diagnostic {
	bits := a.Bits(id)
	if err := c.checkCallingConventions(a, id, bits); err != nil {
		return err
	}
	if !c.memberFn[id] {
		for _, m := range memberOnlyStorage {
			if bits.HasStorage(m) {
				d := errf("typing", a.Span(id), "only a non-static member function may be qualified this way",
					"`%s` is only legal on a member function", storageNames[m])
				return &d
			}
		}
	}
	if d := c.checkDefaultDelete(a, id); d != nil {
		return d
	}
	return c.checkBits(a, id, bits)
}

func (c *typingChecker) checkCallingConventions(a *Arena, id NodeID, bits TypeBits) *Diagnostic {
	n := 0
	for _, cc := range callingConventionBits {
		if bits.HasAttr(cc) {
			n++
		}
	}
	if n > 1 {
		d := errf("typing", a.Span(id), "", "at most one calling convention may be specified")
		return &d
	}
	return nil
}

func (c *typingChecker) VisitReference(a *Arena, id NodeID) *Diagnostic {
	if a.Kind(id) == NodeRvalueReference && !c.dialect.AtLeastCpp(DialectCpp11) {
		d := errf("typing", a.Span(id), "", "rvalue references require C++11 or later")
		return &d
	}
	if a.Kind(id) == NodeReference && c.dialect.IsC() {
		d := errf("typing", a.Span(id), "references are a C++ feature", "`reference` is not valid in C")
		return &d
	}
	return nil
}

func (c *typingChecker) VisitECSU(a *Arena, id NodeID) *Diagnostic {
	if a.Kind(id) == NodeClass && c.dialect.IsC() {
		d := errf("typing", a.Span(id), "use `struct` in C", "`class` is not valid in C")
		return &d
	}
	return c.checkBits(a, id, a.Bits(id))
}

func (c *typingChecker) VisitPointerToMember(a *Arena, id NodeID) *Diagnostic {
	if c.dialect.IsC() {
		d := errf("typing", a.Span(id), "pointer-to-member is a C++ feature", "not valid in C")
		return &d
	}
	return nil
}

func (c *typingChecker) VisitTypedefRef(a *Arena, id NodeID) *Diagnostic { return nil }

func (c *typingChecker) VisitSpecialMember(a *Arena, id NodeID) *Diagnostic {
	if c.dialect.IsC() {
		switch a.Kind(id) {
		case NodeConstructor, NodeDestructor, NodeUserDefinedConversion, NodeOperator, NodeUserDefinedLiteral:
			d := errf("typing", a.Span(id), "this is a C++ feature", "not valid in C")
			return &d
		}
	}
	if a.Kind(id) == NodeUserDefinedLiteral && !c.dialect.AtLeastCpp(DialectCpp11) {
		d := errf("typing", a.Span(id), "", "user-defined literals require C++11 or later")
		return &d
	}
	if a.Kind(id) == NodeOperator {
		if d := c.checkOperatorArity(a, id); d != nil {
			return d
		}
	}
	return c.checkDefaultDelete(a, id)
}

// checkDefaultDelete enforces that `= default`/`= delete` only marks a
// special member function (§4.3.2): a constructor or destructor of any
// signature, or the copy/move assignment operator taking exactly one
// parameter. An ordinary function, conversion operator, or
// user-defined literal can be neither defaulted nor deleted.
func (c *typingChecker) checkDefaultDelete(a *Arena, id NodeID) *Diagnostic {
	bits := a.Bits(id)
	if bits.Storage == nil || (!bits.HasStorage(StorageDefault) && !bits.HasStorage(StorageDelete)) {
		return nil
	}
	word := "default"
	if bits.HasStorage(StorageDelete) {
		word = "delete"
	}
	switch a.Kind(id) {
	case NodeConstructor, NodeDestructor:
		return nil
	case NodeOperator:
		if a.Name(id).Local == "=" && len(a.Params(id)) == 1 {
			return nil
		}
	}
	d := errf("typing", a.Span(id), "",
		"`= %s` is only allowed on a constructor, destructor, or single-parameter assignment operator", word)
	return &d
}

// operatorArity maps an overloaded operator's token (§4.3.2's matrix)
// to the number of explicit parameters a member definition of it may
// take -- the implicit `this` receiver is never counted here, the same
// way NewOperator's own params never include it. -1 means "any count
// is allowed" (the call operator and array new/new[]'s optional
// placement arguments).
var operatorArity = map[string]int{
	"=": 1, "+=": 1, "-=": 1, "*=": 1, "/=": 1, "%=": 1,
	"&=": 1, "|=": 1, "^=": 1, "<<=": 1, ">>=": 1,
	"==": 1, "!=": 1, "<": 1, ">": 1, "<=": 1, ">=": 1, "<=>": 1,
	"+": -1, "-": -1, "*": -1, "&": -1, // unary or binary depending on arity
	"!": 0, "~": 0,
	"++": -1, "--": -1, // 0 (prefix) or 1 dummy int (postfix)
	"->": 0, "->*": 1,
	"[]": 1,
	"()": -1,
	"new": -1, "new[]": -1,
	"delete": 1, "delete[]": 1,
}

func (c *typingChecker) checkOperatorArity(a *Arena, id NodeID) *Diagnostic {
	tok := a.Name(id).Local
	want, ok := operatorArity[tok]
	if !ok || want < 0 {
		return nil
	}
	if got := len(a.Params(id)); got != want {
		d := errf("typing", a.Span(id), "",
			"`operator%s` takes %d parameter(s) as a member, not %d", tok, want, got)
		return &d
	}
	return nil
}
