package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDialectRoundTrip(t *testing.T) {
	for _, name := range []string{"c89", "c99", "c11", "c++11", "c++17", "c++20"} {
		d, ok := ParseDialect(name)
		require.True(t, ok, name)
		require.Equal(t, name, d.String())
	}
}

func TestParseDialectUnknown(t *testing.T) {
	_, ok := ParseDialect("c++42")
	require.False(t, ok)
}

func TestDialectAtLeast(t *testing.T) {
	require.True(t, DialectC11.AtLeastC(DialectC99))
	require.False(t, DialectC89.AtLeastC(DialectC99))
	require.False(t, DialectCpp17.AtLeastC(DialectC99), "a C++ dialect is never \"at least\" a C floor")

	require.True(t, DialectCpp17.AtLeastCpp(DialectCpp11))
	require.False(t, DialectCpp03.AtLeastCpp(DialectCpp11))
}

func TestDialectSetMonotone(t *testing.T) {
	// P8: legality is monotone in the bit set. A stricter requirement
	// (CFrom a later floor) always describes a subset of dialects.
	broad := CFrom(DialectC89)
	narrow := CFrom(DialectC99)
	require.True(t, broad.IsSuperSet(narrow))
	require.False(t, narrow.IsSuperSet(broad))
}

func TestDialectSetUnionAndEmpty(t *testing.T) {
	s := NewDialectSet()
	require.True(t, s.Empty())
	s.Union(NewDialectSet(DialectC99, DialectCpp11))
	require.False(t, s.Empty())
	require.True(t, s.Has(DialectC99))
	require.True(t, s.Has(DialectCpp11))
	require.False(t, s.Has(DialectC89))
	require.Equal(t, 2, s.Count())
}

func TestAllDialectsCoversCAndCpp(t *testing.T) {
	all := AllDialects()
	require.True(t, all.Has(DialectKNR))
	require.True(t, all.Has(DialectC23))
	require.True(t, all.Has(DialectCpp98))
	require.True(t, all.Has(DialectCpp26))
}
