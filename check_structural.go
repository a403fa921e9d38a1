package cdecl

// check_structural.go is the first of §4.3's two cooperating checker
// passes: it rejects shapes that are nonsensical regardless of
// dialect (array-of-function, function-returning-array,
// function-returning-function, reference-to-reference,
// pointer-to-reference, array/reference/pointer of void or register,
// a bare `...` outside a parameter list) before the typing pass ever
// asks whether the current dialect permits what's left.
type structuralChecker struct{}

func newStructuralChecker() *structuralChecker { return &structuralChecker{} }

// CheckStructural runs the structural pass over id's subtree.
func CheckStructural(a *Arena, id NodeID) *Diagnostic {
	return Walk(newStructuralChecker(), a, id)
}

func (c *structuralChecker) VisitBuiltin(a *Arena, id NodeID) *Diagnostic { return nil }

func (c *structuralChecker) VisitPointer(a *Arena, id NodeID) *Diagnostic {
	to := a.Child(id)
	switch a.Kind(to) {
	case NodeReference, NodeRvalueReference:
		d := errf("structural", a.Span(id), "", "cannot declare a pointer to a reference")
		return &d
	}
	if a.Bits(to).HasStorage(StorageRegister) {
		d := errf("structural", a.Span(id), "", "cannot declare a pointer to a register")
		return &d
	}
	return nil
}

func (c *structuralChecker) VisitArray(a *Arena, id NodeID) *Diagnostic {
	elem := a.Child(id)
	switch a.Kind(elem) {
	case NodeFunction, NodeAppleBlock:
		d := errf("structural", a.Span(id), "use a pointer to function instead",
			"cannot declare an array of functions")
		return &d
	}
	if a.Kind(elem) == NodeBuiltin && a.Bits(elem).HasBase(BaseVoid) {
		d := errf("structural", a.Span(id), "use pointer to void instead",
			"cannot declare an array of void")
		return &d
	}
	if a.Bits(elem).HasStorage(StorageRegister) {
		d := errf("structural", a.Span(id), "", "cannot declare an array of register")
		return &d
	}
	return nil
}

func (c *structuralChecker) VisitFunction(a *Arena, id NodeID) *Diagnostic {
	ret := a.Child(id)
	switch a.Kind(ret) {
	case NodeArray:
		d := errf("structural", a.Span(id), "return a pointer to the array instead",
			"a function cannot return an array")
		return &d
	case NodeFunction, NodeAppleBlock:
		d := errf("structural", a.Span(id), "return a pointer to the function instead",
			"a function cannot return a function")
		return &d
	}
	if a.Variadic(id) && len(a.Params(id)) == 0 {
		d := errf("structural", a.Span(id), "name at least one parameter before `...`",
			"a variadic parameter list cannot be the only parameter")
		return &d
	}
	if a.Alignment(id).Kind != AlignNone {
		d := errf("structural", a.Span(id), "", "`alignas` may not apply to a function")
		return &d
	}
	return c.checkParams(a, id)
}

// checkParams enforces §4.3.2's rules for an individual parameter
// that don't depend on the dialect: `void` may appear only as the
// sole, unnamed parameter (the one C spelling that means "no
// parameters", not an ordinary parameter type), and `auto` may never
// appear as an ordinary parameter's type (it is a return-type-deduction
// or template placeholder, never an ordinary parameter in this
// grammar).
func (c *structuralChecker) checkParams(a *Arena, id NodeID) *Diagnostic {
	params := a.Params(id)
	for _, p := range params {
		if p.Type == NoNode {
			continue // the bare `...` marker, handled by VisitSpecialMember
		}
		if a.Kind(p.Type) == NodeBuiltin && a.Bits(p.Type).HasBase(BaseVoid) {
			if len(params) != 1 || p.Name != "" {
				d := errf("structural", a.Span(id), "use `(void)` to declare a function taking no parameters",
					"`void` may only appear as a function's sole, unnamed parameter")
				return &d
			}
		}
		if a.Kind(p.Type) == NodeBuiltin && a.Bits(p.Type).HasBase(BaseAuto) {
			d := errf("structural", a.Span(id), "", "`auto` is not a valid parameter type")
			return &d
		}
	}
	return nil
}

func (c *structuralChecker) VisitReference(a *Arena, id NodeID) *Diagnostic {
	to := a.Child(id)
	switch a.Kind(to) {
	case NodeReference, NodeRvalueReference:
		d := errf("structural", a.Span(id), "", "cannot declare a reference to a reference")
		return &d
	}
	if a.Kind(to) == NodeBuiltin && a.Bits(to).HasBase(BaseVoid) {
		d := errf("structural", a.Span(id), "", "cannot declare a reference to void")
		return &d
	}
	if a.Bits(to).HasStorage(StorageRegister) {
		d := errf("structural", a.Span(id), "", "cannot declare a reference to a register")
		return &d
	}
	return nil
}

func (c *structuralChecker) VisitECSU(a *Arena, id NodeID) *Diagnostic { return nil }

func (c *structuralChecker) VisitPointerToMember(a *Arena, id NodeID) *Diagnostic {
	to := a.Child(id)
	if a.Kind(to) == NodeReference || a.Kind(to) == NodeRvalueReference {
		d := errf("structural", a.Span(id), "", "cannot declare a pointer to member that is a reference")
		return &d
	}
	return nil
}

func (c *structuralChecker) VisitTypedefRef(a *Arena, id NodeID) *Diagnostic { return nil }

func (c *structuralChecker) VisitSpecialMember(a *Arena, id NodeID) *Diagnostic {
	if a.Kind(id) == NodeVariadic {
		d := errf("structural", a.Span(id), "`...` may only appear as a function's last parameter",
			"`...` used outside of a parameter list")
		return &d
	}
	return nil
}
