package path

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileSimpleChain(t *testing.T) {
	e, err := Compile("/a/b")
	require.NoError(t, err)
	require.Equal(t, exprChain, e.Kind)
	require.Equal(t, exprMapKey, e.Right.Kind)
	require.Equal(t, "b", e.Right.Key)
	require.Equal(t, exprChain, e.Left.Kind)
	require.Equal(t, exprRoot, e.Left.Left.Kind)
	require.Equal(t, "a", e.Left.Right.Key)
}

func TestCompileEveryChildAndRecurse(t *testing.T) {
	e, err := Compile("/*")
	require.NoError(t, err)
	require.Equal(t, exprEveryChild, e.Right.Kind)

	e2, err := Compile("/**")
	require.NoError(t, err)
	require.Equal(t, exprEveryRecurse, e2.Right.Kind)
}

func TestCompileAliasRef(t *testing.T) {
	e, err := Compile("*anchor")
	require.NoError(t, err)
	require.Equal(t, exprAliasRef, e.Kind)
	require.Equal(t, "anchor", e.Key)
}

func TestCompileSeqIndexAndSlice(t *testing.T) {
	e, err := Compile("/items/[2]")
	require.NoError(t, err)
	require.Equal(t, exprSeqIndex, e.Right.Kind)
	require.Equal(t, 2, e.Right.Index)

	e2, err := Compile("/items/[1:3]")
	require.NoError(t, err)
	require.Equal(t, exprSeqSlice, e2.Right.Kind)
	require.Equal(t, 1, e2.Right.Index)
	require.Equal(t, 3, e2.Right.SliceEnd)

	e3, err := Compile("/items/[:2]")
	require.NoError(t, err)
	require.False(t, e3.Right.HasStart)
	require.True(t, e3.Right.HasEnd)
}

func TestCompileMultiAndLogical(t *testing.T) {
	e, err := Compile("/a,/b")
	require.NoError(t, err)
	require.Equal(t, exprMulti, e.Kind)
	require.Len(t, e.Children, 2)

	e2, err := Compile("/a || /b")
	require.NoError(t, err)
	require.Equal(t, exprOr, e2.Kind)

	e3, err := Compile("/a && /b")
	require.NoError(t, err)
	require.Equal(t, exprAnd, e3.Kind)
}

func TestCompileComparisonSwitchesScalarMode(t *testing.T) {
	e, err := Compile("/age == 5")
	require.NoError(t, err)
	require.Equal(t, exprCompare, e.Kind)
	require.Equal(t, "==", e.Op)
	require.Equal(t, exprScalarLiteral, e.Right.Kind)
	require.Equal(t, float64(5), e.Right.Literal)
}

func TestCompileArithmeticInScalarMode(t *testing.T) {
	e, err := Compile("/x == 1 + 2 * 3")
	require.NoError(t, err)
	require.Equal(t, exprCompare, e.Kind)
	rhs := e.Right
	require.Equal(t, exprArith, rhs.Kind)
	require.Equal(t, "+", rhs.Op)
	require.Equal(t, exprArith, rhs.Right.Kind)
	require.Equal(t, "*", rhs.Right.Op)
}

func TestCompileFilterSuffixes(t *testing.T) {
	e, err := Compile("/items$")
	require.NoError(t, err)
	require.Equal(t, exprFilterScalar, e.Right.Kind)

	e2, err := Compile("/items%")
	require.NoError(t, err)
	require.Equal(t, exprFilterCollection, e2.Right.Kind)

	e3, err := Compile("/items[]")
	require.NoError(t, err)
	require.Equal(t, exprFilterSeq, e3.Right.Kind)

	e4, err := Compile("/items{}")
	require.NoError(t, err)
	require.Equal(t, exprFilterMap, e4.Right.Kind)

	e5, err := Compile("/items!")
	require.NoError(t, err)
	require.Equal(t, exprFilterUnique, e5.Right.Kind)
}

func TestCompileParenGrouping(t *testing.T) {
	e, err := Compile("/a,(/b/c)")
	require.NoError(t, err)
	require.Equal(t, exprMulti, e.Kind)
	require.Len(t, e.Children, 2)
	require.Equal(t, exprChain, e.Children[1].Kind)
}

func TestCompileParentAndThis(t *testing.T) {
	e, err := Compile("/a/../.")
	require.NoError(t, err)
	require.Equal(t, exprChain, e.Kind)
	require.Equal(t, exprThis, e.Right.Kind)
	require.Equal(t, exprParent, e.Left.Right.Kind)
}

func TestCompileUnbalancedParenErrors(t *testing.T) {
	_, err := Compile("/a/(b")
	require.Error(t, err)
}
