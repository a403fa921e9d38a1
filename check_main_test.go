package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckMainAllowsVoidParams(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(intBuiltin(a), nil, false, newTypeBits(), 0, Span{})

	require.Nil(t, CheckMainSignature(a, fn, "main", DialectC17))
}

func TestCheckMainAllowsArgcArgvStarStar(t *testing.T) {
	a := NewArena()
	charPtr := a.NewPointer(charBuiltin(a), newTypeBits(), 0, Span{})
	argv := a.NewPointer(charPtr, newTypeBits(), 0, Span{})
	params := []Param{{Name: "argc", Type: intBuiltin(a)}, {Name: "argv", Type: argv}}
	fn := a.NewFunction(intBuiltin(a), params, false, newTypeBits(), 0, Span{})

	require.Nil(t, CheckMainSignature(a, fn, "main", DialectC17))
}

func TestCheckMainAllowsArgcArgvArray(t *testing.T) {
	a := NewArena()
	charPtr := a.NewPointer(charBuiltin(a), newTypeBits(), 0, Span{})
	argv := a.NewArray(charPtr, ArrayUnspecified, false, newTypeBits(), 0, Span{})
	params := []Param{{Name: "argc", Type: intBuiltin(a)}, {Name: "argv", Type: argv}}
	fn := a.NewFunction(intBuiltin(a), params, false, newTypeBits(), 0, Span{})

	require.Nil(t, CheckMainSignature(a, fn, "main", DialectC17))
}

func TestCheckMainRejectsNonIntReturn(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(voidBuiltin(a), nil, false, newTypeBits(), 0, Span{})

	d := CheckMainSignature(a, fn, "main", DialectC17)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "must return `int`")
}

func TestCheckMainRejectsStatic(t *testing.T) {
	a := NewArena()
	bits := newTypeBits()
	add(&bits, StT(StorageStatic), "test", Span{})
	fn := a.NewFunction(intBuiltin(a), nil, false, normalize(bits), 0, Span{})

	d := CheckMainSignature(a, fn, "main", DialectC17)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "static")
}

func TestCheckMainRejectsBadParamShape(t *testing.T) {
	a := NewArena()
	params := []Param{{Name: "x", Type: intBuiltin(a)}}
	fn := a.NewFunction(intBuiltin(a), params, false, newTypeBits(), 0, Span{})

	d := CheckMainSignature(a, fn, "main", DialectC17)
	require.NotNil(t, d)
}

func TestCheckMainIgnoresOtherNames(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(voidBuiltin(a), nil, false, newTypeBits(), 0, Span{})

	require.Nil(t, CheckMainSignature(a, fn, "compute", DialectC17))
}

func TestCheckMainIgnoresCpp(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(voidBuiltin(a), nil, false, newTypeBits(), 0, Span{})

	require.Nil(t, CheckMainSignature(a, fn, "main", DialectCpp17))
}
