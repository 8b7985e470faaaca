package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveUnknownAnchor(t *testing.T) {
	doc := buildOne(t, "a: *missing\n")
	err := Resolve(doc)
	require.Error(t, err)
	require.True(t, doc.Diagnostics.HasError())
	require.Contains(t, doc.Diagnostics.Items()[0].Message, "missing")
}

func TestEqualFollowsAliasesAndDetectsCycles(t *testing.T) {
	// Two distinct self-referential sequences, structurally identical.
	// Comparing them must recurse through the cycle and terminate instead
	// of looping forever, per spec §4.6.
	doc := buildOne(t, "a: &x [1, 2, *x]\nb: &y [1, 2, *y]\n")
	require.NoError(t, Resolve(doc))

	pairs := doc.Root.Pairs()
	require.True(t, Equal(pairs[0].Value, pairs[1].Value))
}

func TestEqualScalarsAndStructure(t *testing.T) {
	b := NewBuilder(strings.NewReader("a: 1\nb: 2\n"))
	doc1, err := b.BuildDocument()
	require.NoError(t, err)

	b2 := NewBuilder(strings.NewReader("a: 1\nb: 2\n"))
	doc2, err := b2.BuildDocument()
	require.NoError(t, err)

	require.True(t, Equal(doc1.Root, doc2.Root))

	b3 := NewBuilder(strings.NewReader("a: 1\nb: 3\n"))
	doc3, err := b3.BuildDocument()
	require.NoError(t, err)
	require.False(t, Equal(doc1.Root, doc3.Root))
}
