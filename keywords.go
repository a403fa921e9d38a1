package cdecl

// keywords.go is the "Keyword/literal tables" leaf module (§2): the
// fixed vocabulary both parsers consult to turn a token into a
// TypeBits operand (for add(), bits_algebra.go) or into an AST
// connective (pointer/array/function/reference, in the English
// grammar). Grounded on the same shape as the teacher's grammar
// keyword recognition in grammar_parser.go and grammar_parser_wirth.go,
// which likewise drive parsing from literal->meaning tables rather
// than hand-written switch chains per keyword.

// gibberishBaseKeywords maps a C/C++ surface spelling to the base bit
// it denotes. Multi-word spellings (`long long`, `unsigned long`) are
// not entries here: the gibberish parser calls add() once per token,
// letting bits_algebra.go's duplicate/long-count logic compose them.
var gibberishBaseKeywords = map[string]BaseBit{
	"void":       BaseVoid,
	"auto":       BaseAuto,
	"bool":       BaseBool,
	"_Bool":      BaseBool,
	"char":       BaseChar,
	"char8_t":    BaseChar8T,
	"char16_t":   BaseChar16T,
	"char32_t":   BaseChar32T,
	"wchar_t":    BaseWCharT,
	"short":      BaseShort,
	"int":        BaseInt,
	"long":       BaseLong,
	"signed":     BaseSigned,
	"unsigned":   BaseUnsigned,
	"float":      BaseFloat,
	"double":     BaseDouble,
	"_Complex":   BaseComplex,
	"_Imaginary": BaseImaginary,
	"_BitInt":    BaseBitInt,
	"enum":       BaseEnum,
	"struct":     BaseStruct,
	"class":      BaseClass,
	"union":      BaseUnion,
	"namespace":  BaseNamespace,
	"_Accum":     BaseAccum,
	"_Fract":     BaseFract,
	"_Sat":       BaseSat,
}

// gibberishStorageKeywords is the storage-class / qualifier / linkage
// / ref-qualifier counterpart of gibberishBaseKeywords.
var gibberishStorageKeywords = map[string]StorageBit{
	"extern":       StorageExtern,
	"register":     StorageRegister,
	"static":       StorageStatic,
	"mutable":      StorageMutable,
	"typedef":      StorageTypedef,
	"thread_local": StorageThreadLocal,
	"consteval":    StorageConsteval,
	"constexpr":    StorageConstexpr,
	"constinit":    StorageConstinit,
	"default":      StorageDefault,
	"delete":       StorageDelete,
	"explicit":     StorageExplicit,
	"export":       StorageExport,
	"final":        StorageFinal,
	"friend":       StorageFriend,
	"inline":       StorageInline,
	"noexcept":     StorageNoexcept,
	"override":     StorageOverride,
	"throw":        StorageThrow,
	"virtual":      StorageVirtual,
	"_Atomic":      StorageAtomic,
	"const":        StorageConst,
	"restrict":     StorageRestrict,
	"__restrict":   StorageRestrict,
	"volatile":     StorageVolatile,
	"__block":      StorageAppleBlock,
	"upc_relaxed":  StorageUPCRelaxed,
	"upc_shared":   StorageUPCShared,
	"upc_strict":   StorageUPCStrict,
}

// gibberishAttrKeywords covers the bracket-attribute names
// (`[[deprecated]]`) and the MSC calling-convention keywords, both
// surfaced to the scanner as ordinary identifiers inside their own
// lexical contexts (the scanner strips the `[[` `]]` delimiters before
// consulting this table).
var gibberishAttrKeywords = map[string]AttrBit{
	"carries_dependency": AttrCarriesDependency,
	"deprecated":         AttrDeprecated,
	"maybe_unused":       AttrMaybeUnused,
	"nodiscard":          AttrNodiscard,
	"noreturn":           AttrNoreturn,
	"no_unique_address":  AttrNoUniqueAddress,
	"reproducible":       AttrReproducible,
	"unsequenced":        AttrUnsequenced,
	"__cdecl":            AttrMscCdecl,
	"__clrcall":          AttrMscClrCall,
	"__fastcall":         AttrMscFastCall,
	"__stdcall":          AttrMscStdCall,
	"__thiscall":         AttrMscThisCall,
	"__vectorcall":       AttrMscVectorCall,
}

// englishBaseWords is the pseudo-English vocabulary's base-type noun
// table (§4.5): the words a "declare ... as ..." sentence uses for
// the same base bits gibberishBaseKeywords names.
var englishBaseWords = map[string]BaseBit{
	"void":              BaseVoid,
	"auto":              BaseAuto,
	"bool":              BaseBool,
	"boolean":           BaseBool,
	"char":              BaseChar,
	"character":         BaseChar,
	"char8_t":           BaseChar8T,
	"char16_t":          BaseChar16T,
	"char32_t":          BaseChar32T,
	"wchar_t":           BaseWCharT,
	"wide":              BaseWCharT,
	"short":             BaseShort,
	"int":               BaseInt,
	"integer":           BaseInt,
	"long":              BaseLong,
	"signed":            BaseSigned,
	"unsigned":          BaseUnsigned,
	"float":             BaseFloat,
	"floating":          BaseFloat,
	"double":            BaseDouble,
	"complex":           BaseComplex,
	"imaginary":         BaseImaginary,
	"bit-precise":       BaseBitInt,
	"enum":              BaseEnum,
	"enumeration":       BaseEnum,
	"struct":            BaseStruct,
	"structure":         BaseStruct,
	"class":             BaseClass,
	"union":             BaseUnion,
	"namespace":         BaseNamespace,
	"scope":             BaseScope,
	"accum":             BaseAccum,
	"fract":             BaseFract,
	"fractional":        BaseFract,
	"saturated":         BaseSat,
}

// englishStorageWords is the English counterpart of
// gibberishStorageKeywords.
var englishStorageWords = map[string]StorageBit{
	"extern":        StorageExtern,
	"external":      StorageExtern,
	"register":      StorageRegister,
	"static":        StorageStatic,
	"mutable":       StorageMutable,
	"thread-local":  StorageThreadLocal,
	"consteval":     StorageConsteval,
	"constexpr":     StorageConstexpr,
	"constant":      StorageConst,
	"constinit":     StorageConstinit,
	"explicit":      StorageExplicit,
	"exported":      StorageExport,
	"final":         StorageFinal,
	"friend":        StorageFriend,
	"inline":        StorageInline,
	"noexcept":      StorageNoexcept,
	"non-throwing":  StorageNoexcept,
	"overriding":    StorageOverride,
	"virtual":       StorageVirtual,
	"pure":          StoragePureVirtual,
	"atomic":        StorageAtomic,
	"const":         StorageConst,
	"restricted":    StorageRestrict,
	"volatile":      StorageVolatile,
	"upc_relaxed":   StorageUPCRelaxed,
	"upc_shared":    StorageUPCShared,
	"upc_strict":    StorageUPCStrict,
}

// englishAttrWords is the English counterpart of gibberishAttrKeywords.
var englishAttrWords = map[string]AttrBit{
	"deprecated":          AttrDeprecated,
	"maybe-unused":        AttrMaybeUnused,
	"possibly-unused":     AttrMaybeUnused,
	"discardable":         AttrNodiscard, // negated by the parser: "non-discardable" -> AttrNodiscard
	"non-discardable":     AttrNodiscard,
	"non-returning":       AttrNoreturn,
	"no-unique-address":   AttrNoUniqueAddress,
	"carries-dependency":  AttrCarriesDependency,
	"reproducible":        AttrReproducible,
	"unsequenced":         AttrUnsequenced,
}

// English grammar connectives (§4.5): the fixed closed-class words
// that glue type nouns into declarator phrases rather than denoting
// type bits themselves. Declared as string constants, not a map, since
// the English parser matches them positionally (e.g. "pointer to" only
// after a declarator, "returning" only after a parameter list).
const (
	EnglishPointerTo      = "pointer to"
	EnglishReferenceTo    = "reference to"
	EnglishRvalueRefTo    = "rvalue reference to"
	EnglishArrayOf        = "array of"
	EnglishVariableArray  = "variable length array of"
	EnglishFunctionOf     = "function"
	EnglishTaking         = "taking"
	EnglishReturning      = "returning"
	EnglishNoParams       = "no parameters"
	EnglishVariadic       = "..."
	EnglishMemberOf       = "member of"
	EnglishPointerToMem   = "pointer to member of"
	EnglishConstructorOf  = "constructor of"
	EnglishDestructorOf   = "destructor of"
	EnglishConversionOp   = "conversion operator of"
	EnglishUserLiteral    = "user-defined literal"
	EnglishAs             = "as"
	EnglishDeclare        = "declare"
	EnglishDefine         = "define"
	EnglishBlock          = "block"
)
