package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseGibberish(t *testing.T, src string) (*Arena, NodeID, string) {
	t.Helper()
	a := NewArena()
	td := NewTypedefTable()
	decl, name, d := ParseGibberishDeclaration([]byte(src), td, a)
	require.Nil(t, d, "%v", d)
	a.SetRoot(decl)
	return a, decl, name
}

func TestParseGibberishSimpleInt(t *testing.T) {
	a, decl, name := mustParseGibberish(t, "int x")
	require.Equal(t, "x", name)
	require.Equal(t, NodeBuiltin, a.Kind(decl))
	require.True(t, a.Bits(decl).HasBase(BaseInt))

	ep := NewEnglishPrinter(NewOptions())
	require.Equal(t, "declare x as int", ep.Print(a, decl, name))
}

func TestParseGibberishPointerToInt(t *testing.T) {
	a, decl, name := mustParseGibberish(t, "int *p")
	require.Equal(t, "p", name)
	require.Equal(t, NodePointer, a.Kind(decl))

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "int *p", gp.Print(a, decl, name))
}

func TestParseGibberishArrayOfPointer(t *testing.T) {
	// "array of pointer to int", not "pointer to array of int".
	a, decl, name := mustParseGibberish(t, "int *a[3]")
	require.Equal(t, NodeArray, a.Kind(decl))
	require.Equal(t, NodePointer, a.Kind(a.Child(decl)))

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "int *a[3]", gp.Print(a, decl, name))
}

func TestParseGibberishPointerToArray(t *testing.T) {
	// the parenthesized form reverses the precedence.
	a, decl, name := mustParseGibberish(t, "int (*a)[3]")
	require.Equal(t, NodePointer, a.Kind(decl))
	require.Equal(t, NodeArray, a.Kind(a.Child(decl)))

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "int (*a)[3]", gp.Print(a, decl, name))
}

func TestParseGibberishFunctionReturningPointer(t *testing.T) {
	a, decl, name := mustParseGibberish(t, "int *f(void)")
	require.Equal(t, NodeFunction, a.Kind(decl))
	require.Equal(t, NodePointer, a.Kind(a.Child(decl)))

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "int *f(void)", gp.Print(a, decl, name))
}

func TestParseGibberishPointerToFunction(t *testing.T) {
	a, decl, name := mustParseGibberish(t, "int (*f)(void)")
	require.Equal(t, NodePointer, a.Kind(decl))
	require.Equal(t, NodeFunction, a.Kind(a.Child(decl)))

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "int (*f)(void)", gp.Print(a, decl, name))
}

func TestParseGibberishAlignasIntegerOperand(t *testing.T) {
	a, decl, _ := mustParseGibberish(t, "alignas(16) int x")
	require.Equal(t, AlignInteger, a.Alignment(decl).Kind)
	require.Equal(t, 16, a.Alignment(decl).Value)
}

func TestParseGibberishAlignasRejectsNonPowerOfTwo(t *testing.T) {
	a := NewArena()
	td := NewTypedefTable()
	_, _, d := ParseGibberishDeclaration([]byte("alignas(12) int x"), td, a)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "power of two")
}

func TestParseGibberishAlignasRejectsRegister(t *testing.T) {
	a := NewArena()
	td := NewTypedefTable()
	_, _, d := ParseGibberishDeclaration([]byte("alignas(16) register int x"), td, a)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "register")
}

func TestExplainStaticArrayMigratesStorageToArray(t *testing.T) {
	a, decl, name := mustParseGibberish(t, "static int x[4]")
	require.Equal(t, NodeArray, a.Kind(decl))
	require.True(t, a.Bits(decl).HasStorage(StorageStatic))
	require.False(t, a.Bits(a.Child(decl)).HasStorage(StorageStatic))

	ep := NewEnglishPrinter(NewOptions())
	require.Equal(t, "declare x as static array 4 of int", ep.Print(a, decl, name))
}

func TestExplainMatchesEnglishConnectives(t *testing.T) {
	a, decl, name := mustParseGibberish(t, "int *p")
	require.Nil(t, CheckStructural(a, decl))
	require.Nil(t, CheckTyping(a, decl, DialectCpp17))

	ep := NewEnglishPrinter(NewOptions())
	require.Equal(t, "declare p as pointer to int", ep.Print(a, decl, name))
}

func TestDeclareEnglishProducesGibberish(t *testing.T) {
	a := NewArena()
	td := NewTypedefTable()
	decl, name, d := ParseEnglishDeclaration([]byte("declare p as pointer to int"), td, a)
	require.Nil(t, d, "%v", d)
	a.SetRoot(decl)

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "int *p;", gp.Print(a, decl, name)+";")
}

func TestParseGibberishStructTagRoundtrips(t *testing.T) {
	a, decl, name := mustParseGibberish(t, "struct Foo *p")
	require.Equal(t, "p", name)
	require.Equal(t, NodePointer, a.Kind(decl))
	require.Equal(t, NodeStruct, a.Kind(a.Child(decl)))
	require.Equal(t, "Foo", a.Name(a.Child(decl)).Local)

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "struct Foo *p", gp.Print(a, decl, name))
}

func TestParseGibberishClassTagRejectedInC(t *testing.T) {
	a, decl, _ := mustParseGibberish(t, "class Foo x")
	require.Equal(t, NodeClass, a.Kind(decl))

	d := CheckTyping(a, decl, DialectC11)
	require.NotNil(t, d)
	require.Contains(t, d.Message, "class")
}

func TestDeclareEnglishFunctionTakingAndReturning(t *testing.T) {
	a := NewArena()
	td := NewTypedefTable()
	decl, name, d := ParseEnglishDeclaration(
		[]byte("declare f as function taking int, char returning pointer to int"), td, a)
	require.Nil(t, d, "%v", d)
	a.SetRoot(decl)

	gp := NewGibberishPrinter(NewOptions())
	require.Equal(t, "int *f(int, char)", gp.Print(a, decl, name))
}
