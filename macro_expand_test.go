package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandObjectLikeMacro(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{Name: "MAX_LEN", Body: lexPPTokens("256")})

	out, _ := Expand(tbl, 1, "int buf[MAX_LEN];")
	require.Equal(t, "int buf[256];", out)
}

func TestExpandFunctionLikeMacro(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{
		Name:       "SQUARE",
		IsFunction: true,
		Params:     []string{"x"},
		Body:       lexPPTokens("((x) * (x))"),
	})

	out, _ := Expand(tbl, 1, "SQUARE(3)")
	require.Equal(t, "((3) * (3))", out)
}

func TestExpandFunctionLikeMacroNotInvokedWithoutParen(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{
		Name:       "SQUARE",
		IsFunction: true,
		Params:     []string{"x"},
		Body:       lexPPTokens("((x) * (x))"),
	})

	out, _ := Expand(tbl, 1, "SQUARE")
	require.Equal(t, "SQUARE", out)
}

func TestExpandStringizesParam(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{
		Name:       "STR",
		IsFunction: true,
		Params:     []string{"x"},
		Body:       lexPPTokens("#x"),
	})

	out, _ := Expand(tbl, 1, "STR(hello)")
	require.Equal(t, `"hello"`, out)
}

func TestExpandPastesTokens(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{
		Name:       "CONCAT",
		IsFunction: true,
		Params:     []string{"a", "b"},
		Body:       lexPPTokens("a ## b"),
	})

	out, _ := Expand(tbl, 1, "CONCAT(foo, bar)")
	require.Equal(t, "foobar", out)
}

func TestExpandVariadicArgs(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{
		Name:       "LOG",
		IsFunction: true,
		Params:     []string{"fmt"},
		Variadic:   true,
		Body:       lexPPTokens("printf(fmt, __VA_ARGS__)"),
	})

	out, _ := Expand(tbl, 1, `LOG("%d", 1, 2)`)
	require.Equal(t, `printf("%d", 1, 2)`, out)
}

func TestExpandVAOptOmitsCommaWhenVariadicEmpty(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{
		Name:       "LOG",
		IsFunction: true,
		Params:     []string{"fmt"},
		Variadic:   true,
		Body:       lexPPTokens("printf(fmt __VA_OPT__(,) __VA_ARGS__)"),
	})

	withArgs, _ := Expand(tbl, 1, `LOG("x", 1)`)
	require.Equal(t, `printf("x" , 1)`, withArgs)

	withoutArgs, _ := Expand(tbl, 1, `LOG("x")`)
	require.Equal(t, `printf("x"  )`, withoutArgs)
}

func TestExpandSelfReferenceGuardStopsRecursion(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{Name: "LOOP", Body: lexPPTokens("1 + LOOP")})

	out, _ := Expand(tbl, 1, "LOOP")
	require.Equal(t, "1 + LOOP", out)
}

func TestExpandNestedObjectLikeMacro(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{Name: "A", Body: lexPPTokens("B + 1")})
	tbl.Define(&Macro{Name: "B", Body: lexPPTokens("2")})

	out, _ := Expand(tbl, 1, "A")
	require.Equal(t, "2 + 1", out)
}

func TestExpandLineMacro(t *testing.T) {
	tbl := NewMacroTable()
	out, _ := Expand(tbl, 42, "__LINE__")
	require.Equal(t, "42", out)
}

func TestExpandTraceRecordsEachStep(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{Name: "A", Body: lexPPTokens("B")})
	tbl.Define(&Macro{Name: "B", Body: lexPPTokens("1")})

	_, trace := Expand(tbl, 1, "A")
	require.Contains(t, trace, "A")
	require.Contains(t, trace, "B")
}

func TestUndefRemovesMacro(t *testing.T) {
	tbl := NewMacroTable()
	tbl.Define(&Macro{Name: "FOO", Body: lexPPTokens("1")})
	tbl.Undef("FOO")

	out, _ := Expand(tbl, 1, "FOO")
	require.Equal(t, "FOO", out)
}
