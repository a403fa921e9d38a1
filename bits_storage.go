package cdecl

// StorageBit enumerates the `S` part of the type-bit triple: storage
// class, qualifiers, linkage, and the C++ ref-qualifiers (§3).
type StorageBit uint

const (
	StorageNone StorageBit = iota
	StorageAutoStorage // pre-C++11 `auto` meaning "automatic duration"
	StorageAppleBlock
	StorageExtern
	StorageExternC
	StorageRegister
	StorageStatic
	StorageMutable
	StorageTypedef
	StorageThreadLocal
	StorageConsteval
	StorageConstexpr
	StorageConstinit
	StorageDefault
	StorageDelete
	StorageExplicit
	StorageExport
	StorageFinal
	StorageFriend
	StorageInline
	StorageNoexcept
	StorageOverride
	StoragePureVirtual
	StorageThisParam
	StorageThrow
	StorageVirtual
	StorageAtomic
	StorageConst
	StorageRestrict
	StorageVolatile
	StorageNonEmptyArray // C99 `static N` in an array parameter
	StorageRefLValue     // &
	StorageRefRValue     // &&
	StorageUPCRelaxed
	StorageUPCShared
	StorageUPCStrict

	numStorageBits
)

var storageNames = map[StorageBit]string{
	StorageAutoStorage: "auto",
	StorageAppleBlock:  "__block",
	StorageExtern:      "extern",
	StorageExternC:     `extern "C"`,
	StorageRegister:    "register",
	StorageStatic:      "static",
	StorageMutable:     "mutable",
	StorageTypedef:     "typedef",
	StorageThreadLocal: "thread_local",
	StorageConsteval:   "consteval",
	StorageConstexpr:   "constexpr",
	StorageConstinit:   "constinit",
	StorageDefault:     "default",
	StorageDelete:      "delete",
	StorageExplicit:    "explicit",
	StorageExport:      "export",
	StorageFinal:       "final",
	StorageFriend:      "friend",
	StorageInline:      "inline",
	StorageNoexcept:    "noexcept",
	StorageOverride:    "override",
	StoragePureVirtual: "= 0",
	StorageThisParam:   "this",
	StorageThrow:       "throw",
	StorageVirtual:     "virtual",
	StorageAtomic:      "_Atomic",
	StorageConst:       "const",
	StorageRestrict:    "restrict",
	StorageVolatile:    "volatile",
	StorageRefLValue:   "&",
	StorageRefRValue:   "&&",
	StorageUPCRelaxed:  "upc_relaxed",
	StorageUPCShared:   "upc_shared",
	StorageUPCStrict:   "upc_strict",
}

// qualifierBits is the subset of storage bits printed as
// cv-qualifiers by the gibberish printer's east/west rules (§4.4),
// as opposed to storage class, linkage, or the special-member
// keywords, which always print in a fixed position.
var qualifierBits = []StorageBit{StorageConst, StorageVolatile, StorageRestrict, StorageAtomic}

// memberOnlyStorage are storage bits legal only on a non-static
// member function (§4.3.2: "const, volatile, &, &&, final, override,
// virtual, pure-virtual").
var memberOnlyStorage = []StorageBit{
	StorageConst, StorageVolatile, StorageRefLValue, StorageRefRValue,
	StorageFinal, StorageOverride, StorageVirtual, StoragePureVirtual,
}

var storageLegality = map[StorageBit]DialectSet{
	StorageAutoStorage: unionDS(AllC(), NewDialectSet(DialectCpp98, DialectCpp03)),
	StorageAppleBlock:  AllDialects(),
	StorageExtern:      AllDialects(),
	StorageExternC:     AllDialects(),
	StorageRegister:    AllDialects(),
	StorageStatic:      AllDialects(),
	StorageMutable:     AllCpp(),
	StorageTypedef:     AllDialects(),
	StorageThreadLocal: unionDS(CFrom(DialectC11), CppFrom(DialectCpp11)),
	StorageConsteval:   CppFrom(DialectCpp20),
	StorageConstexpr:   CppFrom(DialectCpp11),
	StorageConstinit:   CppFrom(DialectCpp20),
	StorageDefault:     CppFrom(DialectCpp11),
	StorageDelete:      CppFrom(DialectCpp11),
	StorageExplicit:    AllCpp(),
	StorageExport:      unionDS(CppFrom(DialectCpp11), NewDialectSet(DialectCpp20)),
	StorageFinal:       CppFrom(DialectCpp11),
	StorageFriend:      AllCpp(),
	StorageInline:      unionDS(CFrom(DialectC99), AllCpp()),
	StorageNoexcept:    CppFrom(DialectCpp11),
	StorageOverride:    CppFrom(DialectCpp11),
	StoragePureVirtual: AllCpp(),
	StorageThisParam:   CppFrom(DialectCpp23),
	StorageThrow:       AllCpp(),
	StorageVirtual:     AllCpp(),
	StorageAtomic:      CFrom(DialectC11),
	StorageConst:       unionDS(CFrom(DialectC89), AllCpp()),
	StorageRestrict:    CFrom(DialectC99),
	StorageVolatile:    unionDS(CFrom(DialectC89), AllCpp()),
	StorageNonEmptyArray: CFrom(DialectC99),
	StorageRefLValue:     CppFrom(DialectCpp11),
	StorageRefRValue:     CppFrom(DialectCpp11),
	StorageUPCRelaxed:    AllC(),
	StorageUPCShared:     AllC(),
	StorageUPCStrict:     AllC(),
}
