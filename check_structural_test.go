package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intBuiltin(a *Arena) NodeID {
	bits := newTypeBits()
	add(&bits, BaseT(BaseInt), "test", Span{})
	return a.NewBuiltin(normalize(bits), ScopedName{}, 0, Span{})
}

func voidBuiltin(a *Arena) NodeID {
	bits := newTypeBits()
	add(&bits, BaseT(BaseVoid), "test", Span{})
	return a.NewBuiltin(normalize(bits), ScopedName{}, 0, Span{})
}

func charBuiltin(a *Arena) NodeID {
	bits := newTypeBits()
	add(&bits, BaseT(BaseChar), "test", Span{})
	return a.NewBuiltin(normalize(bits), ScopedName{}, 0, Span{})
}

func registerInt(a *Arena) NodeID {
	bits := newTypeBits()
	add(&bits, BaseT(BaseInt), "test", Span{})
	add(&bits, StT(StorageRegister), "test", Span{})
	return a.NewBuiltin(normalize(bits), ScopedName{}, 0, Span{})
}

func TestCheckStructuralRejectsArrayOfFunction(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(intBuiltin(a), nil, false, newTypeBits(), 0, Span{})
	arr := a.NewArray(fn, ArrayUnspecified, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, arr)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "array of functions")
}

func TestCheckStructuralRejectsFunctionReturningArray(t *testing.T) {
	a := NewArena()
	arr := a.NewArray(intBuiltin(a), 3, false, newTypeBits(), 0, Span{})
	fn := a.NewFunction(arr, nil, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, fn)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "cannot return an array")
}

func TestCheckStructuralRejectsFunctionReturningFunction(t *testing.T) {
	a := NewArena()
	inner := a.NewFunction(intBuiltin(a), nil, false, newTypeBits(), 0, Span{})
	outer := a.NewFunction(inner, nil, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, outer)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "cannot return a function")
}

func TestCheckStructuralAllowsFunctionReturningPointer(t *testing.T) {
	a := NewArena()
	ptr := a.NewPointer(intBuiltin(a), newTypeBits(), 0, Span{})
	fn := a.NewFunction(ptr, nil, false, newTypeBits(), 0, Span{})

	require.Nil(t, CheckStructural(a, fn))
}

func TestCheckStructuralRejectsReferenceToReference(t *testing.T) {
	a := NewArena()
	inner := a.NewReference(intBuiltin(a), 0, Span{})
	outer := a.NewReference(inner, 0, Span{})

	d := CheckStructural(a, outer)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "reference to a reference")
}

func TestCheckStructuralRejectsPointerToMemberThatIsReference(t *testing.T) {
	a := NewArena()
	ref := a.NewReference(intBuiltin(a), 0, Span{})
	ptm := a.NewPointerToMember(ref, NewScopedName("C"), newTypeBits(), 0, Span{})

	d := CheckStructural(a, ptm)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "pointer to member")
}

func TestCheckStructuralRejectsArrayOfVoid(t *testing.T) {
	a := NewArena()
	arr := a.NewArray(voidBuiltin(a), ArrayUnspecified, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, arr)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "array of void")
	require.Contains(t, d.Hint, "pointer to void")
}

func TestCheckStructuralRejectsReferenceToVoid(t *testing.T) {
	a := NewArena()
	ref := a.NewReference(voidBuiltin(a), 0, Span{})

	d := CheckStructural(a, ref)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "reference to void")
}

func TestCheckStructuralRejectsPointerToReference(t *testing.T) {
	a := NewArena()
	ref := a.NewReference(intBuiltin(a), 0, Span{})
	ptr := a.NewPointer(ref, newTypeBits(), 0, Span{})

	d := CheckStructural(a, ptr)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "pointer to a reference")
}

func TestCheckStructuralRejectsPointerToRegister(t *testing.T) {
	a := NewArena()
	ptr := a.NewPointer(registerInt(a), newTypeBits(), 0, Span{})

	d := CheckStructural(a, ptr)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "pointer to a register")
}

func TestCheckStructuralRejectsArrayOfRegister(t *testing.T) {
	a := NewArena()
	arr := a.NewArray(registerInt(a), ArrayUnspecified, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, arr)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "array of register")
}

func TestCheckStructuralRejectsReferenceToRegister(t *testing.T) {
	a := NewArena()
	ref := a.NewReference(registerInt(a), 0, Span{})

	d := CheckStructural(a, ref)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "reference to a register")
}

func TestCheckStructuralRejectsUnsizedVariadic(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(intBuiltin(a), nil, true, newTypeBits(), 0, Span{})

	d := CheckStructural(a, fn)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "cannot be the only parameter")
}

func TestCheckStructuralAllowsVariadicWithNamedParams(t *testing.T) {
	a := NewArena()
	params := []Param{{Name: "fmt", Type: intBuiltin(a)}}
	fn := a.NewFunction(intBuiltin(a), params, true, newTypeBits(), 0, Span{})

	require.Nil(t, CheckStructural(a, fn))
}

func TestCheckStructuralRejectsAlignasOnFunction(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(intBuiltin(a), nil, false, newTypeBits(), 0, Span{})
	a.SetAlignment(fn, Alignment{Kind: AlignInteger, Value: 8})

	d := CheckStructural(a, fn)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "alignas")
}

func TestCheckStructuralRejectsVoidAlongsideOtherParams(t *testing.T) {
	a := NewArena()
	params := []Param{{Type: voidBuiltin(a)}, {Type: intBuiltin(a)}}
	fn := a.NewFunction(intBuiltin(a), params, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, fn)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "sole, unnamed parameter")
}

func TestCheckStructuralRejectsNamedVoidParam(t *testing.T) {
	a := NewArena()
	params := []Param{{Name: "v", Type: voidBuiltin(a)}}
	fn := a.NewFunction(intBuiltin(a), params, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, fn)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "sole, unnamed parameter")
}

func TestCheckStructuralAllowsSoleUnnamedVoidParam(t *testing.T) {
	a := NewArena()
	params := []Param{{Type: voidBuiltin(a)}}
	fn := a.NewFunction(intBuiltin(a), params, false, newTypeBits(), 0, Span{})

	require.Nil(t, CheckStructural(a, fn))
}

func autoBuiltin(a *Arena) NodeID {
	bits := newTypeBits()
	add(&bits, BaseT(BaseAuto), "test", Span{})
	return a.NewBuiltin(normalize(bits), ScopedName{}, 0, Span{})
}

func TestCheckStructuralRejectsAutoParam(t *testing.T) {
	a := NewArena()
	params := []Param{{Name: "x", Type: autoBuiltin(a)}}
	fn := a.NewFunction(intBuiltin(a), params, false, newTypeBits(), 0, Span{})

	d := CheckStructural(a, fn)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "`auto` is not a valid parameter type")
}

func TestCheckStructuralRejectsBareVariadic(t *testing.T) {
	a := NewArena()
	v := a.NewVariadic(Span{})

	d := CheckStructural(a, v)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "parameter list")
}
