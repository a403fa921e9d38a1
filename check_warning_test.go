package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckWarningsFlagsUnspecifiedArraySizeNotOutermost(t *testing.T) {
	a := NewArena()
	inner := a.NewArray(intBuiltin(a), ArrayUnspecified, false, newTypeBits(), 1, Span{})
	outer := a.NewArray(inner, 3, false, newTypeBits(), 0, Span{})

	warns := CheckWarnings(a, outer, DialectCpp17)
	require.Len(t, warns, 1)
	require.Contains(t, warns[0].Message, "outermost dimension")
}

func TestCheckWarningsAllowsUnspecifiedArraySizeOutermost(t *testing.T) {
	a := NewArena()
	outer := a.NewArray(intBuiltin(a), ArrayUnspecified, false, newTypeBits(), 0, Span{})

	warns := CheckWarnings(a, outer, DialectCpp17)
	require.Empty(t, warns)
}

func TestCheckWarningsFlagsTripleIndirection(t *testing.T) {
	a := NewArena()
	p1 := a.NewPointer(intBuiltin(a), newTypeBits(), 2, Span{})
	p2 := a.NewPointer(p1, newTypeBits(), 1, Span{})
	p3 := a.NewPointer(p2, newTypeBits(), 0, Span{})

	warns := CheckWarnings(a, p3, DialectCpp17)
	require.Len(t, warns, 1)
	require.Contains(t, warns[0].Message, "hard to read")
}

func TestCheckWarningsAllowsDoubleIndirection(t *testing.T) {
	a := NewArena()
	p1 := a.NewPointer(intBuiltin(a), newTypeBits(), 1, Span{})
	p2 := a.NewPointer(p1, newTypeBits(), 0, Span{})

	warns := CheckWarnings(a, p2, DialectCpp17)
	require.Empty(t, warns)
}
