package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newIntTypedef(t *testing.T, name string) (*Arena, *TypedefEntry) {
	t.Helper()
	a := NewArena()
	td := NewTypedefTable()
	decl, _, d := ParseGibberishDeclaration([]byte("int "+name), td, a)
	require.Nil(t, d)
	return a, &TypedefEntry{Name: name, Arena: a, Decl: decl, Bits: a.Bits(decl)}
}

func TestTypedefDefineThenLookup(t *testing.T) {
	td := NewTypedefTable()
	a, e := newIntTypedef(t, "x")
	_ = a
	require.Nil(t, td.Define(e))

	got, ok := td.Lookup("x")
	require.True(t, ok)
	require.Equal(t, "x", got.Name)
}

func TestTypedefRedefinitionWithSameTypeIsAllowed(t *testing.T) {
	td := NewTypedefTable()
	_, e1 := newIntTypedef(t, "x")
	_, e2 := newIntTypedef(t, "x")
	require.Nil(t, td.Define(e1))
	require.Nil(t, td.Define(e2))
}

func TestTypedefRedefinitionWithDifferentTypeIsRejected(t *testing.T) {
	td := NewTypedefTable()
	_, e1 := newIntTypedef(t, "x")
	require.Nil(t, td.Define(e1))

	a2 := NewArena()
	td2 := NewTypedefTable()
	decl, _, d := ParseGibberishDeclaration([]byte("char x"), td2, a2)
	require.Nil(t, d)
	e2 := &TypedefEntry{Name: "x", Arena: a2, Decl: decl, Bits: a2.Bits(decl)}

	d2 := td.Define(e2)
	require.NotNil(t, d2)
	require.Contains(t, d2.Message, "already declared")
}

func TestTypedefRedefinitionWithDifferentArrayBoundIsRejected(t *testing.T) {
	td := NewTypedefTable()
	a1 := NewArena()
	td1 := NewTypedefTable()
	decl1, _, d := ParseGibberishDeclaration([]byte("int x[3]"), td1, a1)
	require.Nil(t, d)
	e1 := &TypedefEntry{Name: "x", Arena: a1, Decl: decl1, Bits: a1.Bits(decl1)}
	require.Nil(t, td.Define(e1))

	a2 := NewArena()
	td2 := NewTypedefTable()
	decl2, _, d := ParseGibberishDeclaration([]byte("int x[4]"), td2, a2)
	require.Nil(t, d)
	e2 := &TypedefEntry{Name: "x", Arena: a2, Decl: decl2, Bits: a2.Bits(decl2)}

	require.NotNil(t, td.Define(e2))
}

func TestTypedefNamesPreservesDefinitionOrder(t *testing.T) {
	td := NewTypedefTable()
	_, e1 := newIntTypedef(t, "first")
	_, e2 := newIntTypedef(t, "second")
	require.Nil(t, td.Define(e1))
	require.Nil(t, td.Define(e2))

	require.Equal(t, []string{"first", "second"}, td.Names())
}

func TestTypedefLookupMissingNameReturnsFalse(t *testing.T) {
	td := NewTypedefTable()
	_, ok := td.Lookup("nope")
	require.False(t, ok)
}
