package cdecl

// AttrBit enumerates the `A` part of the type-bit triple: the
// C++11-and-later attribute-like specifiers plus the MSC calling
// conventions (§3).
type AttrBit uint

const (
	AttrNone AttrBit = iota
	AttrCarriesDependency
	AttrDeprecated
	AttrMaybeUnused
	AttrNodiscard
	AttrNoreturn
	AttrNoUniqueAddress
	AttrReproducible
	AttrUnsequenced
	AttrMscCdecl
	AttrMscClrCall
	AttrMscFastCall
	AttrMscStdCall
	AttrMscThisCall
	AttrMscVectorCall

	numAttrBits
)

var attrNames = map[AttrBit]string{
	AttrCarriesDependency: "carries_dependency",
	AttrDeprecated:        "deprecated",
	AttrMaybeUnused:       "maybe_unused",
	AttrNodiscard:         "nodiscard",
	AttrNoreturn:          "noreturn",
	AttrNoUniqueAddress:   "no_unique_address",
	AttrReproducible:      "reproducible",
	AttrUnsequenced:       "unsequenced",
	AttrMscCdecl:          "__cdecl",
	AttrMscClrCall:        "__clrcall",
	AttrMscFastCall:       "__fastcall",
	AttrMscStdCall:        "__stdcall",
	AttrMscThisCall:       "__thiscall",
	AttrMscVectorCall:     "__vectorcall",
}

var attrNamesEnglish = map[AttrBit]string{
	AttrNoreturn: "non-returning",
}

var attrLegality = map[AttrBit]DialectSet{
	AttrCarriesDependency: CppFrom(DialectCpp11),
	AttrDeprecated:        unionDS(CFrom(DialectC23), CppFrom(DialectCpp14)),
	AttrMaybeUnused:       unionDS(CFrom(DialectC23), CppFrom(DialectCpp17)),
	AttrNodiscard:         unionDS(CFrom(DialectC23), CppFrom(DialectCpp17)),
	AttrNoreturn:          unionDS(CFrom(DialectC11), CppFrom(DialectCpp11)),
	AttrNoUniqueAddress:   CppFrom(DialectCpp20),
	AttrReproducible:      CFrom(DialectC23),
	AttrUnsequenced:       CFrom(DialectC23),
	AttrMscCdecl:          AllDialects(),
	AttrMscClrCall:        AllDialects(),
	AttrMscFastCall:       AllDialects(),
	AttrMscStdCall:        AllDialects(),
	AttrMscThisCall:       AllDialects(),
	AttrMscVectorCall:     AllDialects(),
}

// callingConventionBits lets the checker/printer treat the MSC
// calling conventions as a mutually-exclusive group (only one may
// apply to a given function).
var callingConventionBits = []AttrBit{
	AttrMscCdecl, AttrMscClrCall, AttrMscFastCall,
	AttrMscStdCall, AttrMscThisCall, AttrMscVectorCall,
}
