package cdecl

// BaseBit enumerates the `B` part of the type-bit triple (§3): "exactly
// one of {void, auto, bool, ...}; combinable via modifier union (e.g.
// unsigned long long int)". `long` is the one base bit allowed to
// combine with itself (up to twice); TypeBits tracks that count
// separately rather than as a second bit (see bits_algebra.go).
type BaseBit uint

const (
	BaseNone BaseBit = iota
	BaseVoid
	BaseAuto
	BaseBool
	BaseChar
	BaseChar8T
	BaseChar16T
	BaseChar32T
	BaseWCharT
	BaseShort
	BaseInt
	BaseLong
	BaseSigned
	BaseUnsigned
	BaseFloat
	BaseDouble
	BaseComplex
	BaseImaginary
	BaseBitInt
	BaseEnum
	BaseStruct
	BaseClass
	BaseUnion
	BaseNamespace
	BaseScope
	BaseTypedefRef
	BaseAccum
	BaseFract
	BaseSat

	numBaseBits
)

var baseNames = map[BaseBit]string{
	BaseVoid:       "void",
	BaseAuto:       "auto",
	BaseBool:       "bool",
	BaseChar:       "char",
	BaseChar8T:     "char8_t",
	BaseChar16T:    "char16_t",
	BaseChar32T:    "char32_t",
	BaseWCharT:     "wchar_t",
	BaseShort:      "short",
	BaseInt:        "int",
	BaseLong:       "long",
	BaseSigned:     "signed",
	BaseUnsigned:   "unsigned",
	BaseFloat:      "float",
	BaseDouble:     "double",
	BaseComplex:    "_Complex",
	BaseImaginary:  "_Imaginary",
	BaseBitInt:     "_BitInt",
	BaseEnum:       "enum",
	BaseStruct:     "struct",
	BaseClass:      "class",
	BaseUnion:      "union",
	BaseNamespace:  "namespace",
	BaseScope:      "scope",
	BaseTypedefRef: "typedef",
	BaseAccum:      "_Accum",
	BaseFract:      "_Fract",
	BaseSat:        "_Sat",
}

var baseNamesEnglish = map[BaseBit]string{
	BaseComplex:   "complex",
	BaseImaginary: "imaginary",
	BaseBitInt:    "bit-precise int",
}

// BaseMaxBitIntWidth is the fixed maximum width _BitInt(N) supports
// (§4.1 "Special cases").
const BaseMaxBitIntWidth = 128

// isEcsuKind reports whether b names an enum/class/struct/union tag
// kind — the base kinds a ScopedName's local-type may hold alongside
// namespace/scope (§3 "Scoped name").
func isEcsuKind(b BaseBit) bool {
	switch b {
	case BaseEnum, BaseClass, BaseStruct, BaseUnion:
		return true
	default:
		return false
	}
}

// baseLegality gives each base bit's own language gate; check() (in
// bits_algebra.go) intersects these per combination rather than
// enumerating every legal combination by hand, which is the
// practical reading of "the set of languages in which it is legal
// must be non-empty for the selected dialect" (§3).
var baseLegality = map[BaseBit]DialectSet{
	BaseVoid:       AllDialects(),
	BaseAuto:       AllDialects(), // not dialect-gated; the keyword tables map every `auto` to this bit
	BaseBool:       unionDS(CFrom(DialectC99), AllCpp()),
	BaseChar:       AllDialects(),
	BaseChar8T:     CppFrom(DialectCpp20),
	BaseChar16T:    unionDS(CFrom(DialectC11), CppFrom(DialectCpp11)),
	BaseChar32T:    unionDS(CFrom(DialectC11), CppFrom(DialectCpp11)),
	BaseWCharT:     AllDialects(),
	BaseShort:      AllDialects(),
	BaseInt:        AllDialects(),
	BaseLong:       AllDialects(),
	BaseSigned:     AllDialects(),
	BaseUnsigned:   AllDialects(),
	BaseFloat:      AllDialects(),
	BaseDouble:     AllDialects(),
	BaseComplex:    unionDS(CFrom(DialectC99)),
	BaseImaginary:  unionDS(CFrom(DialectC99)),
	BaseBitInt:     CFrom(DialectC23),
	BaseEnum:       AllDialects(),
	BaseStruct:     AllDialects(),
	BaseClass:      AllCpp(),
	BaseUnion:      AllDialects(),
	BaseNamespace:  AllCpp(),
	BaseScope:      AllCpp(),
	BaseTypedefRef: AllDialects(),
	BaseAccum:      CFrom(DialectC99),
	BaseFract:      CFrom(DialectC99),
	BaseSat:        CFrom(DialectC99),
}

func unionDS(sets ...DialectSet) DialectSet {
	out := NewDialectSet()
	for _, s := range sets {
		out.Union(s)
	}
	return out
}
