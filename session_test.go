package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionExplainBasicPointer(t *testing.T) {
	s := NewSession()
	r := s.Eval("explain int *x")
	require.Empty(t, r.Diagnostics)
	require.Contains(t, r.Output, "declare x as")
	require.Contains(t, r.Output, "pointer to")
}

func TestSessionExplainFunctionReturningPointer(t *testing.T) {
	s := NewSession()
	r := s.Eval("explain int *f(void)")
	require.Empty(t, r.Diagnostics)
	require.Contains(t, r.Output, "function")
	require.Contains(t, r.Output, "returning")
	require.Contains(t, r.Output, "pointer to")
}

func TestSessionDeclareRoundtripsPointerToArray(t *testing.T) {
	s := NewSession()
	r := s.Eval("declare a as pointer to array of 3 of int")
	require.Empty(t, r.Diagnostics)
	require.Equal(t, "int (*a)[3];", r.Output)
}

func TestSessionDeclareArrayOfPointer(t *testing.T) {
	s := NewSession()
	r := s.Eval("declare a as array of 3 of pointer to int")
	require.Empty(t, r.Diagnostics)
	require.Equal(t, "int *a[3];", r.Output)
}

func TestSessionExplainRejectsBadMainSignature(t *testing.T) {
	s := NewSession()
	s.Eval("set lang c11")
	r := s.Eval("explain static int main(void)")
	require.Len(t, r.Diagnostics, 1)
	require.Contains(t, r.Diagnostics[0].Message, "static")
}

func TestSessionExplainAllowsStandardMainSignature(t *testing.T) {
	s := NewSession()
	s.Eval("set lang c11")
	r := s.Eval("explain int main(int argc, char **argv)")
	require.Empty(t, r.Diagnostics)
}

func TestSessionExplainRejectsStructurallyInvalidDeclaration(t *testing.T) {
	s := NewSession()
	r := s.Eval("explain int a()[3]")
	require.Len(t, r.Diagnostics, 1)
	require.Contains(t, r.Diagnostics[0].Message, "array of functions")
}

func TestSessionCastExplainsExpressionIntoType(t *testing.T) {
	s := NewSession()
	r := s.Eval("cast p into int *")
	require.Empty(t, r.Diagnostics)
	require.Contains(t, r.Output, "declare p as")
	require.Contains(t, r.Output, "pointer to")
}

func TestSessionTypedefRecordsName(t *testing.T) {
	s := NewSession()
	r := s.Eval("typedef int Age")
	require.Empty(t, r.Diagnostics)
	require.Contains(t, r.Output, "defined Age")

	_, ok := s.Typedefs.Lookup("Age")
	require.True(t, ok)
}

func TestSessionTypedefRedefinitionWithDifferentTypeFails(t *testing.T) {
	s := NewSession()
	require.Empty(t, s.Eval("typedef int Age").Diagnostics)

	r := s.Eval("typedef char Age")
	require.Len(t, r.Diagnostics, 1)
	require.Contains(t, r.Diagnostics[0].Message, "already declared")
}

func TestSessionDefineThenExpand(t *testing.T) {
	s := NewSession()
	r := s.Eval("define MAX_LEN 256")
	require.Equal(t, "defined MAX_LEN", r.Output)

	out := s.Eval("expand int buf[MAX_LEN];")
	require.Equal(t, "int buf[256];", out.Output)
}

func TestSessionUndefRemovesMacro(t *testing.T) {
	s := NewSession()
	s.Eval("define FOO 1")
	s.Eval("undef FOO")

	out := s.Eval("expand FOO")
	require.Equal(t, "FOO", out.Output)
}

func TestSessionSetDialectThenShow(t *testing.T) {
	s := NewSession()
	r := s.Eval("set lang c89")
	require.Contains(t, r.Output, "c89")
	require.Equal(t, DialectC89, s.Options.Dialect)

	show := s.Eval("show")
	require.Contains(t, show.Output, "lang = c89")
}

func TestSessionSetUnknownDialectFails(t *testing.T) {
	s := NewSession()
	r := s.Eval("set lang notalang")
	require.Len(t, r.Diagnostics, 1)
}

func TestSessionSetBoolToggle(t *testing.T) {
	s := NewSession()
	require.False(t, s.Options.EastConst)

	r := s.Eval("set east-const")
	require.Equal(t, "east-const = true", r.Output)
	require.True(t, s.Options.EastConst)

	r = s.Eval("set noeast-const")
	require.Equal(t, "east-const = false", r.Output)
	require.False(t, s.Options.EastConst)
}

func TestSessionSetUnknownSettingFails(t *testing.T) {
	s := NewSession()
	r := s.Eval("set bogus")
	require.Len(t, r.Diagnostics, 1)
	require.Contains(t, r.Diagnostics[0].Message, "unknown setting")
}

func TestSessionShowTypedefsListsDefinedNames(t *testing.T) {
	s := NewSession()
	s.Eval("typedef int Age")
	s.Eval("typedef char Byte")

	r := s.Eval("show typedefs")
	require.Equal(t, "Age\nByte", r.Output)
}

func TestSessionQuitSetsQuitFlag(t *testing.T) {
	s := NewSession()
	r := s.Eval("quit")
	require.True(t, r.Quit)
}

func TestSessionEmptyLineIsNoop(t *testing.T) {
	s := NewSession()
	r := s.Eval("   ")
	require.Equal(t, Result{}, r)
}

func TestSessionBareDeclarationInfersExplain(t *testing.T) {
	s := NewSession()
	r := s.Eval("int *x")
	require.Empty(t, r.Diagnostics)
	require.Contains(t, r.Output, "declare x as")
}

func TestSessionBareEnglishInfersDeclare(t *testing.T) {
	s := NewSession()
	r := s.Eval("x as pointer to int")
	require.Empty(t, r.Diagnostics)
	require.Equal(t, "int *x;", r.Output)
}
