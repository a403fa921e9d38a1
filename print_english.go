package cdecl

import "strings"

// print_english.go renders an Arena declarator as the pseudo-English
// sentence body (everything after "declare <name> as", §4.5) -- the
// mirror image of print_gibberish.go, walking outside-in the way the
// English parser reads, rather than splitting a base specifier out
// front.
type EnglishPrinter struct {
	opts *Options
}

func NewEnglishPrinter(opts *Options) *EnglishPrinter { return &EnglishPrinter{opts: opts} }

// Print renders "declare <name> as <phrase>" in full, or just
// "<phrase>" when name == "" (an abstract declarator, e.g. while
// explaining a cast).
func (ep *EnglishPrinter) Print(a *Arena, id NodeID, name string) string {
	phrase := ep.phrase(a, id)
	if name == "" {
		return phrase
	}
	return EnglishDeclare + " " + name + " " + EnglishAs + " " + phrase
}

func (ep *EnglishPrinter) phrase(a *Arena, id NodeID) string {
	qual := ep.qualPrefix(a.Bits(id))

	switch a.Kind(id) {
	case NodeBuiltin:
		return qual + nameEnglish(a.Bits(id))

	case NodeTypedefRef, NodeNamePlaceholder:
		return qual + a.Name(id).Local

	case NodeEnum, NodeClass, NodeStruct, NodeUnion:
		word := nameEnglish(a.Bits(id))
		if n := a.Name(id); n.Local != "" {
			return qual + word + " " + n.English()
		}
		return qual + word

	case NodePointer:
		return qual + EnglishPointerTo + " " + ep.phrase(a, a.Child(id))

	case NodeReference:
		return EnglishReferenceTo + " " + ep.phrase(a, a.Child(id))

	case NodeRvalueReference:
		return EnglishRvalueRefTo + " " + ep.phrase(a, a.Child(id))

	case NodePointerToMember:
		return qual + EnglishPointerToMem + " " + a.OwnerClass(id).English() + " " + ep.phrase(a, a.Child(id))

	case NodeArray:
		return ep.arrayPhrase(a, id)

	case NodeFunction:
		return ep.functionPhrase(a, id, EnglishFunctionOf)

	case NodeAppleBlock:
		return ep.functionPhrase(a, id, EnglishBlock)

	case NodeConstructor:
		return EnglishConstructorOf + " " + a.OwnerClass(id).English() + " " + ep.paramsPhrase(a, a.Params(id))

	case NodeDestructor:
		return EnglishDestructorOf + " " + a.OwnerClass(id).English()

	case NodeUserDefinedConversion:
		return EnglishConversionOp + " " + a.OwnerClass(id).English() + " " + EnglishAs + " " + ep.phrase(a, a.ConvTarget(id))

	case NodeVariadic:
		return EnglishVariadic

	default:
		return ""
	}
}

func (ep *EnglishPrinter) arrayPhrase(a *Arena, id NodeID) string {
	qual := ep.qualPrefix(a.Bits(id))
	var head string
	switch a.ArraySize(id) {
	case ArrayVariableLength:
		head = EnglishVariableArray
	case ArrayUnspecified:
		head = EnglishArrayOf
	default:
		if a.NonEmpty(id) {
			head = "non-empty array of"
		} else {
			head = EnglishArrayOf
		}
	}
	if n := a.ArraySize(id); n >= 0 {
		return qual + strings.TrimSuffix(head, " of") + " " + itoa(n) + " of " + ep.phrase(a, a.Child(id))
	}
	return qual + head + " " + ep.phrase(a, a.Child(id))
}

func (ep *EnglishPrinter) functionPhrase(a *Arena, id NodeID, head string) string {
	qual := ep.qualPrefix(a.Bits(id))
	params := ep.paramsPhrase(a, a.Params(id))
	ret := ep.phrase(a, a.Child(id))
	return qual + head + " " + params + " " + EnglishReturning + " " + ret
}

// paramsPhrase renders "taking <p1>, <p2>, ..." where each <pN> is
// that parameter's own declarator phrase, optionally preceded by its
// name ("x as pointer to int") when the parameter was given one.
func (ep *EnglishPrinter) paramsPhrase(a *Arena, params []Param) string {
	if len(params) == 0 {
		return EnglishNoParams
	}
	return EnglishTaking + " " + ep.joinParams(a, params)
}

func (ep *EnglishPrinter) joinParams(a *Arena, params []Param) string {
	var parts []string
	for _, p := range params {
		if p.Type == NoNode {
			parts = append(parts, EnglishVariadic)
			continue
		}
		if p.Name != "" {
			parts = append(parts, p.Name+" "+EnglishAs+" "+ep.phrase(a, p.Type))
		} else {
			parts = append(parts, ep.phrase(a, p.Type))
		}
	}
	return strings.Join(parts, ", ")
}

func (ep *EnglishPrinter) qualPrefix(bits TypeBits) string {
	s := nameEnglish(getPart(bits, partStorage))
	if s == "" {
		return ""
	}
	return s + " "
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
