package cdecl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// part is the 4-bit tag every TypeBits value carries so a value
// produced by get_part (or complement) can be routed back to the
// right sub-operations (§3: "Each part carries a 4-bit tag identifying
// which part it is"). partAll marks a full (B,S,A) triple; the other
// three mark a single-part projection.
type part uint8

const (
	partAll part = iota
	partBase
	partStorage
	partAttr
)

// TypeBits is the logical triple (B,S,A) of §3: three independent bit
// sets (base / storage+qualifier / attribute), each backed by a
// bits-and-blooms BitSet sized to its own enum rather than packed into
// one machine word — the teacher's own bitsets (oracle_charset.go's
// first/follow sets) are similarly one BitSet per concern, not a
// single flat integer.
type TypeBits struct {
	tag     part
	Base    *bitset.BitSet
	Storage *bitset.BitSet
	Attr    *bitset.BitSet

	// LongCount tracks how many times `long` has been added, since
	// it is the one base bit allowed to repeat (§3: "long may occur
	// once or twice only").
	LongCount int

	// BitIntWidth is N in `_BitInt(N)` (§3 "Special cases"), capped
	// at BaseMaxBitIntWidth.
	BitIntWidth int
}

func newTypeBits() TypeBits {
	return TypeBits{
		tag:     partAll,
		Base:    bitset.New(uint(numBaseBits)),
		Storage: bitset.New(uint(numStorageBits)),
		Attr:    bitset.New(uint(numAttrBits)),
	}
}

// BaseT, StT, and AtT build single-bit operands for Add, e.g.
// `Add(&dst, BaseT(BaseUnsigned), loc)`.
func BaseT(b BaseBit) TypeBits {
	t := newTypeBits()
	t.Base.Set(uint(b))
	return t
}

func StT(s StorageBit) TypeBits {
	t := newTypeBits()
	t.Storage.Set(uint(s))
	return t
}

func AtT(a AttrBit) TypeBits {
	t := newTypeBits()
	t.Attr.Set(uint(a))
	return t
}

func (t TypeBits) IsZero() bool {
	return t.Base.None() && t.Storage.None() && t.Attr.None()
}

func (t TypeBits) Clone() TypeBits {
	return TypeBits{
		tag:         t.tag,
		Base:        t.Base.Clone(),
		Storage:     t.Storage.Clone(),
		Attr:        t.Attr.Clone(),
		LongCount:   t.LongCount,
		BitIntWidth: t.BitIntWidth,
	}
}

func (t TypeBits) HasBase(b BaseBit) bool       { return t.Base.Test(uint(b)) }
func (t TypeBits) HasStorage(s StorageBit) bool { return t.Storage.Test(uint(s)) }
func (t TypeBits) HasAttr(a AttrBit) bool       { return t.Attr.Test(uint(a)) }

func (t TypeBits) anyBaseSet(bits ...BaseBit) bool {
	for _, b := range bits {
		if t.HasBase(b) {
			return true
		}
	}
	return false
}

func (t TypeBits) anyStorageSet(bits ...StorageBit) bool {
	for _, s := range bits {
		if t.HasStorage(s) {
			return true
		}
	}
	return false
}

// signedUnsignedConflict is the base-modifier conflict group `add`
// must police (§4.1 "mixing incompatible base modifiers").
var signedUnsignedConflict = [2]BaseBit{BaseSigned, BaseUnsigned}

// add unions `n` into `dst`, enforcing §4.1's contract:
//   - duplicate bit other than `long` -> error "duplicate"
//   - three `long` -> error "long long long"
//   - mixing incompatible base modifiers (signed/unsigned) -> error
//
// Callers must call check() afterward (§4.1); add does not itself
// consult the current dialect.
func add(dst *TypeBits, n TypeBits, production string, sp Span) *Diagnostic {
	// Base part.
	for b := BaseBit(1); b < numBaseBits; b++ {
		if !n.Base.Test(uint(b)) {
			continue
		}
		if b == BaseLong {
			dst.LongCount++
			if dst.LongCount > 2 {
				d := errf(production, sp, "use at most `long long`",
					"`long` specified too many times")
				return &d
			}
			dst.Base.Set(uint(b))
			continue
		}
		if dst.Base.Test(uint(b)) {
			d := errf(production, sp, "", "duplicate type specifier `%s`", baseNames[b])
			return &d
		}
		if b == BaseSigned && dst.HasBase(BaseUnsigned) {
			d := errf(production, sp, "", "`signed` and `unsigned` are mutually exclusive")
			return &d
		}
		if b == BaseUnsigned && dst.HasBase(BaseSigned) {
			d := errf(production, sp, "", "`signed` and `unsigned` are mutually exclusive")
			return &d
		}
		dst.Base.Set(uint(b))
	}
	if n.BitIntWidth > 0 {
		dst.BitIntWidth = n.BitIntWidth
	}

	// Storage part.
	for s := StorageBit(1); s < numStorageBits; s++ {
		if !n.Storage.Test(uint(s)) {
			continue
		}
		if dst.Storage.Test(uint(s)) {
			d := errf(production, sp, "", "duplicate storage specifier `%s`", storageNames[s])
			return &d
		}
		dst.Storage.Set(uint(s))
	}

	// Attribute part.
	for a := AttrBit(1); a < numAttrBits; a++ {
		if !n.Attr.Test(uint(a)) {
			continue
		}
		if dst.Attr.Test(uint(a)) {
			d := errf(production, sp, "", "duplicate attribute `%s`", attrNames[a])
			return &d
		}
		dst.Attr.Set(uint(a))
	}

	return nil
}

// normalize rewrites `bits` per §4.1:
//   - a bare `signed` other than `signed char` is dropped
//   - if the base becomes empty (or holds only size/sign modifiers),
//     `int` is inserted
//
// normalize is idempotent (P6: normalize(normalize(x)) == normalize(x)).
func normalize(bits TypeBits) TypeBits {
	out := bits.Clone()

	if out.HasBase(BaseSigned) && !out.HasBase(BaseChar) {
		out.Base.Clear(uint(BaseSigned))
	}

	hasPrimary := false
	for _, b := range []BaseBit{
		BaseVoid, BaseAuto, BaseBool, BaseChar, BaseChar8T, BaseChar16T,
		BaseChar32T, BaseWCharT, BaseInt, BaseFloat, BaseDouble,
		BaseBitInt, BaseEnum, BaseStruct, BaseClass, BaseUnion,
		BaseNamespace, BaseScope, BaseTypedefRef, BaseAccum, BaseFract,
	} {
		if out.HasBase(b) {
			hasPrimary = true
			break
		}
	}
	hasModifierOnly := out.anyBaseSet(BaseShort, BaseLong, BaseUnsigned) ||
		out.HasBase(BaseComplex) || out.HasBase(BaseImaginary) || out.HasBase(BaseSat)

	if !hasPrimary && (hasModifierOnly || out.Base.None()) {
		out.Base.Set(uint(BaseInt))
	}

	return out
}

// check returns the (possibly empty) set of dialects in which `bits`
// is legal: the intersection, over every set bit, of that bit's own
// language gate (§4.1). Emptiness means "illegal in all languages we
// know" — callers compare against the session's selected dialect.
func check(bits TypeBits) DialectSet {
	legal := AllDialects()

	for b := BaseBit(1); b < numBaseBits; b++ {
		if bits.Base.Test(uint(b)) {
			legal = intersectDS(legal, baseLegality[b])
		}
	}
	for s := StorageBit(1); s < numStorageBits; s++ {
		if bits.Storage.Test(uint(s)) {
			legal = intersectDS(legal, storageLegality[s])
		}
	}
	for a := AttrBit(1); a < numAttrBits; a++ {
		if bits.Attr.Test(uint(a)) {
			legal = intersectDS(legal, attrLegality[a])
		}
	}
	if bits.HasBase(BaseBitInt) && bits.BitIntWidth > BaseMaxBitIntWidth {
		legal = NewDialectSet()
	}
	return legal
}

func intersectDS(a, b DialectSet) DialectSet {
	out := a.Clone()
	out.bs.InPlaceIntersection(b.bs)
	return out
}

// complement inverts the value bits of a single-part projection
// (produced by getPart), preserving the part tag (§4.1, P7: the 4-bit
// part tag survives complement and complement is an involution on the
// value bits).
func complement(bits TypeBits) TypeBits {
	out := bits.Clone()
	switch bits.tag {
	case partBase:
		out.Base = out.Base.Complement()
	case partStorage:
		out.Storage = out.Storage.Complement()
	case partAttr:
		out.Attr = out.Attr.Complement()
	default:
		out.Base = out.Base.Complement()
		out.Storage = out.Storage.Complement()
		out.Attr = out.Attr.Complement()
	}
	return out
}

// getPart projects the part of `bits` named by maskTag (§4.1), e.g.
// `getPart(bits, partStorage)`.
func getPart(bits TypeBits, maskTag part) TypeBits {
	out := newTypeBits()
	out.tag = maskTag
	switch maskTag {
	case partBase:
		out.Base = bits.Base.Clone()
		out.LongCount = bits.LongCount
		out.BitIntWidth = bits.BitIntWidth
	case partStorage:
		out.Storage = bits.Storage.Clone()
	case partAttr:
		out.Attr = bits.Attr.Clone()
	default:
		return bits.Clone()
	}
	return out
}

// nameC renders `bits` in C/C++ surface order: storage, qualifiers,
// base modifiers, base name (§4.4's pre-cursor specifier sequence).
func nameC(bits TypeBits) string {
	return renderBits(bits, baseNames, storageNames, attrNames)
}

// nameEnglish renders `bits` with the pseudo-English aliases where
// one exists (§4.5: "non-returning" for noreturn).
func nameEnglish(bits TypeBits) string {
	baseN := mergeNames(baseNames, baseNamesEnglish)
	attrN := mergeNames(attrNames, attrNamesEnglish)
	return renderBits(bits, baseN, storageNames, attrN)
}

func mergeNames[K comparable](base, overrides map[K]string) map[K]string {
	out := make(map[K]string, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// nameError prefers the English spelling over the C spelling when
// `preferEnglish` is set, matching §4.1's "prefers the pseudo-English
// spelling when the error is produced while translating English to
// gibberish".
func nameError(bits TypeBits, preferEnglish bool) string {
	if preferEnglish {
		return nameEnglish(bits)
	}
	return nameC(bits)
}

func renderBits(bits TypeBits, baseN map[BaseBit]string, storageN map[StorageBit]string, attrN map[AttrBit]string) string {
	var words []string

	storageOrder := []StorageBit{
		StorageExternC, StorageExtern, StorageStatic, StorageRegister,
		StorageThreadLocal, StorageTypedef, StorageInline, StorageConstexpr,
		StorageConsteval, StorageConstinit, StorageVirtual, StorageFriend,
		StorageExplicit, StorageMutable, StorageAppleBlock,
		StorageAtomic, StorageConst, StorageVolatile, StorageRestrict,
	}
	for _, s := range storageOrder {
		if bits.HasStorage(s) {
			words = append(words, storageN[s])
		}
	}

	if bits.HasBase(BaseSigned) {
		words = append(words, baseN[BaseSigned])
	}
	if bits.HasBase(BaseUnsigned) {
		words = append(words, baseN[BaseUnsigned])
	}
	if bits.HasBase(BaseShort) {
		words = append(words, baseN[BaseShort])
	}
	for i := 0; i < bits.LongCount; i++ {
		words = append(words, baseN[BaseLong])
	}
	if bits.HasBase(BaseComplex) {
		words = append(words, baseN[BaseComplex])
	}
	if bits.HasBase(BaseImaginary) {
		words = append(words, baseN[BaseImaginary])
	}

	primaryOrder := []BaseBit{
		BaseVoid, BaseAuto, BaseBool, BaseChar, BaseChar8T, BaseChar16T,
		BaseChar32T, BaseWCharT, BaseInt, BaseFloat, BaseDouble, BaseBitInt,
		BaseEnum, BaseStruct, BaseClass, BaseUnion, BaseNamespace, BaseScope,
		BaseTypedefRef, BaseAccum, BaseFract, BaseSat,
	}
	for _, b := range primaryOrder {
		if bits.HasBase(b) {
			if b == BaseBitInt {
				words = append(words, fmt.Sprintf("%s(%d)", baseN[b], bits.BitIntWidth))
			} else {
				words = append(words, baseN[b])
			}
		}
	}

	trailing := []StorageBit{StorageRefLValue, StorageRefRValue, StorageNoexcept, StorageOverride, StorageFinal, StoragePureVirtual}
	for _, s := range trailing {
		if bits.HasStorage(s) {
			words = append(words, storageN[s])
		}
	}

	attrOrder := make([]AttrBit, 0, numAttrBits)
	for a := AttrBit(1); a < numAttrBits; a++ {
		attrOrder = append(attrOrder, a)
	}
	sort.Slice(attrOrder, func(i, j int) bool { return attrOrder[i] < attrOrder[j] })
	for _, a := range attrOrder {
		if bits.HasAttr(a) {
			words = append(words, attrN[a])
		}
	}

	return strings.Join(words, " ")
}
