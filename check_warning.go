package cdecl

// check_warning.go is §4.3's third pass: style/portability advice that
// never stops processing (§4.3, §7's "warnings never stop a
// command"). Collected into a Diagnostics slice rather than returned
// one at a time like the structural/typing passes.
type warningChecker struct {
	dialect Dialect
	out     Diagnostics
}

func CheckWarnings(a *Arena, id NodeID, d Dialect) Diagnostics {
	wc := &warningChecker{dialect: d}
	Inspect(a, id, func(n NodeID) bool {
		wc.visit(a, n)
		return true
	})
	return wc.out
}

func (c *warningChecker) visit(a *Arena, id NodeID) {
	switch a.Kind(id) {
	case NodeArray:
		c.warnUnspecifiedArraySize(a, id)
	case NodePointer:
		c.warnPointerToPointerToPointer(a, id)
	}
}

func (c *warningChecker) warnUnspecifiedArraySize(a *Arena, id NodeID) {
	if a.ArraySize(id) == ArrayUnspecified && a.Depth(id) > 0 {
		c.out = append(c.out, warnf("warning", a.Span(id),
			"an array with unspecified size is only valid as the outermost dimension or a parameter"))
	}
}

func (c *warningChecker) warnPointerToPointerToPointer(a *Arena, id NodeID) {
	depth := 0
	cur := id
	for a.Kind(cur) == NodePointer {
		depth++
		cur = a.Child(cur)
	}
	if depth >= 3 && a.Depth(id) == 0 {
		c.out = append(c.out, warnf("warning", a.Span(id),
			"three or more levels of pointer indirection is hard to read; consider a typedef"))
	}
}
