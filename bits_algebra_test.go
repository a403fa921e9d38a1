package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddRejectsDuplicateBaseBit(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, BaseT(BaseInt), "test", Span{}))
	d := add(&bits, BaseT(BaseInt), "test", Span{})
	require.NotNil(t, d)
	require.Contains(t, d.Message, "duplicate")
}

func TestAddAllowsLongTwiceButNotThrice(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, BaseT(BaseLong), "test", Span{}))
	require.Nil(t, add(&bits, BaseT(BaseLong), "test", Span{}))
	require.Equal(t, 2, bits.LongCount)

	d := add(&bits, BaseT(BaseLong), "test", Span{})
	require.NotNil(t, d)
}

func TestAddRejectsSignedUnsignedConflict(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, BaseT(BaseUnsigned), "test", Span{}))
	d := add(&bits, BaseT(BaseSigned), "test", Span{})
	require.NotNil(t, d)
	require.Contains(t, d.Message, "mutually exclusive")
}

func TestAddRejectsDuplicateStorageAndAttr(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, StT(StorageConst), "test", Span{}))
	require.NotNil(t, add(&bits, StT(StorageConst), "test", Span{}))

	bits2 := newTypeBits()
	require.Nil(t, add(&bits2, AtT(AttrNoreturn), "test", Span{}))
	require.NotNil(t, add(&bits2, AtT(AttrNoreturn), "test", Span{}))
}

func TestNormalizeInsertsImplicitInt(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, BaseT(BaseUnsigned), "test", Span{}))
	out := normalize(bits)
	require.True(t, out.HasBase(BaseInt))
	require.True(t, out.HasBase(BaseUnsigned))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, BaseT(BaseShort), "test", Span{}))
	once := normalize(bits)
	twice := normalize(once)
	require.Equal(t, nameC(once), nameC(twice))
}

func TestNormalizeDropsBareSignedExceptChar(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, BaseT(BaseSigned), "test", Span{}))
	require.Nil(t, add(&bits, BaseT(BaseInt), "test", Span{}))
	out := normalize(bits)
	require.False(t, out.HasBase(BaseSigned))

	charBits := newTypeBits()
	require.Nil(t, add(&charBits, BaseT(BaseSigned), "test", Span{}))
	require.Nil(t, add(&charBits, BaseT(BaseChar), "test", Span{}))
	outChar := normalize(charBits)
	require.True(t, outChar.HasBase(BaseSigned))
}

func TestCheckRejectsBitIntOverWidth(t *testing.T) {
	bits := newTypeBits()
	bits.Base.Set(uint(BaseBitInt))
	bits.BitIntWidth = BaseMaxBitIntWidth + 1
	require.True(t, check(bits).Empty())
}

func TestComplementIsInvolutionOnValueBits(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, StT(StorageConst), "test", Span{}))
	part := getPart(bits, partStorage)
	once := complement(part)
	twice := complement(once)
	require.True(t, part.Storage.Equal(twice.Storage))
}

func TestGetPartProjectsOnlyThatAxis(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, BaseT(BaseInt), "test", Span{}))
	require.Nil(t, add(&bits, StT(StorageConst), "test", Span{}))

	storageOnly := getPart(bits, partStorage)
	require.False(t, storageOnly.HasBase(BaseInt))
	require.True(t, storageOnly.HasStorage(StorageConst))
}

func TestNameCRendersStorageBeforeBase(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, StT(StorageConst), "test", Span{}))
	require.Nil(t, add(&bits, BaseT(BaseInt), "test", Span{}))
	require.Equal(t, "const int", nameC(bits))
}

func TestNameEnglishPrefersAlias(t *testing.T) {
	bits := newTypeBits()
	require.Nil(t, add(&bits, AtT(AttrNoreturn), "test", Span{}))
	require.Nil(t, add(&bits, BaseT(BaseVoid), "test", Span{}))
	require.Equal(t, "void non-returning", nameEnglish(bits))
	require.Equal(t, "void noreturn", nameC(bits))
}
