package cdecl

// check_main.go implements §4.3.2's C `main` signature rules, checked
// by the declared name rather than node kind -- nothing else in this
// grammar's AST distinguishes "the function named main" from any
// other function, so this runs as its own pass alongside the
// structural/typing checkers rather than as a Visitor method.
func CheckMainSignature(a *Arena, id NodeID, name string, d Dialect) *Diagnostic {
	if name != "main" || !d.IsC() || a.Kind(id) != NodeFunction {
		return nil
	}
	ret := a.Child(id)
	if bits, ok := baseBitsOf(a, ret); !ok || !bits.HasBase(BaseInt) || bits.Base.Count() != 1 {
		d := errf("typing", a.Span(id), "", "`main` must return `int`")
		return &d
	}
	bits := a.Bits(id)
	if bits.HasStorage(StorageStatic) {
		d := errf("typing", a.Span(id), "", "`main` may not be declared `static`")
		return &d
	}
	if bits.HasStorage(StorageInline) {
		d := errf("typing", a.Span(id), "", "`main` may not be declared `inline`")
		return &d
	}
	if !isValidMainParams(a, a.Params(id)) {
		d := errf("typing", a.Span(id), "use `main(void)`, `main(int, char *argv[])`, or the equivalent",
			"`main` takes no parameters, or `(int, char **argv)`-shaped parameters")
		return &d
	}
	return nil
}

func isValidMainParams(a *Arena, params []Param) bool {
	switch len(params) {
	case 0:
		return true
	case 1:
		return isVoidParam(a, params[0])
	case 2:
		return isIntParam(a, params[0]) && isArgvParam(a, params[1])
	default:
		return false
	}
}

func isVoidParam(a *Arena, p Param) bool {
	bits, ok := baseBitsOf(a, p.Type)
	return ok && bits.HasBase(BaseVoid)
}

func isIntParam(a *Arena, p Param) bool {
	bits, ok := baseBitsOf(a, p.Type)
	return ok && bits.HasBase(BaseInt)
}

// isArgvParam accepts both of C's standard argv spellings: `char
// *argv[]` (array of pointer to char) and `char **argv` (pointer to
// pointer to char).
func isArgvParam(a *Arena, p Param) bool {
	switch a.Kind(p.Type) {
	case NodeArray, NodePointer:
		return isCharPointer(a, a.Child(p.Type))
	}
	return false
}

func isCharPointer(a *Arena, id NodeID) bool {
	if a.Kind(id) != NodePointer {
		return false
	}
	bits, ok := baseBitsOf(a, a.Child(id))
	return ok && bits.HasBase(BaseChar)
}
