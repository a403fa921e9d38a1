package cdecl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedNamePushAndString(t *testing.T) {
	n := NewScopedName("vector")
	n, d := n.Push(ScopeComponent{Name: "std", Kind: BaseNamespace}, "test", Span{})
	require.Nil(t, d)
	require.Equal(t, "std::vector", n.String())
}

func TestScopedNameRejectsNestingInsideEnum(t *testing.T) {
	n := NewScopedName("x")
	n, d := n.Push(ScopeComponent{Name: "Color", Kind: BaseEnum}, "test", Span{})
	require.Nil(t, d)

	_, d = n.Push(ScopeComponent{Name: "Inner", Kind: BaseClass}, "test", Span{})
	require.NotNil(t, d)
	require.Contains(t, d.Message, "enum")
}

func TestScopedNameRejectsNamespaceInsideClass(t *testing.T) {
	n := NewScopedName("x")
	n, d := n.Push(ScopeComponent{Name: "Inner", Kind: BaseClass}, "test", Span{})
	require.Nil(t, d)

	_, d = n.Push(ScopeComponent{Name: "outer", Kind: BaseNamespace}, "test", Span{})
	require.NotNil(t, d)
}

func TestScopedNameEnglishIsInnermostFirst(t *testing.T) {
	n := NewScopedName("Color")
	n, d := n.Push(ScopeComponent{Name: "outer", Kind: BaseNamespace}, "test", Span{})
	require.Nil(t, d)
	n, d = n.Push(ScopeComponent{Name: "Inner", Kind: BaseClass}, "test", Span{})
	require.Nil(t, d)

	require.Equal(t, "Color of class Inner of namespace outer", n.English())
}

func TestUnqualifiedNameIsNotQualified(t *testing.T) {
	n := NewScopedName("x")
	require.False(t, n.IsQualified())
	require.Equal(t, "x", n.String())
	require.Equal(t, "x", n.English())
}
