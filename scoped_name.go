package cdecl

import "strings"

// ScopeComponent is one link in a ScopedName's chain: a namespace,
// class/struct/union, or (innermost only) enum (§3 "Scoped name": the
// nesting order is namespace* -> (class|struct|union)* -> enum?).
type ScopeComponent struct {
	Name string
	Kind BaseBit // BaseNamespace, BaseClass, BaseStruct, BaseUnion, or BaseEnum
}

// ScopedName is a `::`-qualified name, e.g. `std::vector` or
// `outer::Inner::Color`. Components is ordered outermost-first;
// Local is the final, unqualified identifier.
type ScopedName struct {
	Components []ScopeComponent
	Local      string
}

// NewScopedName builds an unqualified name.
func NewScopedName(local string) ScopedName {
	return ScopedName{Local: local}
}

// Push appends a scope component, enforcing the nesting-order
// invariant: once an enum component is pushed, nothing may follow it,
// and no namespace component may follow a class/struct/union one.
// A non-nil *Diagnostic means c was rejected and n is returned
// unchanged.
func (n ScopedName) Push(c ScopeComponent, production string, sp Span) (ScopedName, *Diagnostic) {
	if len(n.Components) > 0 {
		last := n.Components[len(n.Components)-1]
		if last.Kind == BaseEnum {
			d := errf(production, sp, "", "nothing may nest inside an enum")
			return n, &d
		}
		if c.Kind == BaseNamespace && last.Kind != BaseNamespace {
			d := errf(production, sp, "", "a namespace cannot nest inside a class, struct, or union")
			return n, &d
		}
	}
	out := n
	out.Components = append(append([]ScopeComponent{}, n.Components...), c)
	return out, nil
}

// String renders the `::`-joined form (gibberish style).
func (n ScopedName) String() string {
	var b strings.Builder
	for _, c := range n.Components {
		b.WriteString(c.Name)
		b.WriteString("::")
	}
	b.WriteString(n.Local)
	return b.String()
}

// English renders the "of"-chained form used by the English printer,
// innermost first: "Color of enum Color of class Inner of namespace outer".
func (n ScopedName) English() string {
	if len(n.Components) == 0 {
		return n.Local
	}
	var b strings.Builder
	b.WriteString(n.Local)
	for i := len(n.Components) - 1; i >= 0; i-- {
		c := n.Components[i]
		b.WriteString(" of ")
		b.WriteString(baseNamesEnglishOr(c.Kind))
		b.WriteString(" ")
		b.WriteString(c.Name)
	}
	return b.String()
}

func baseNamesEnglishOr(b BaseBit) string {
	if n, ok := baseNamesEnglish[b]; ok {
		return n
	}
	return baseNames[b]
}

// IsQualified reports whether n carries any scope components.
func (n ScopedName) IsQualified() bool { return len(n.Components) > 0 }
