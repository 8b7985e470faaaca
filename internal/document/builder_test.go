package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildOne(t *testing.T, src string) *Document {
	t.Helper()
	b := NewBuilder(strings.NewReader(src))
	doc, err := b.BuildDocument()
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestBuilderScalarRoot(t *testing.T) {
	doc := buildOne(t, "hello\n")
	require.Equal(t, ScalarNode, doc.Root.Kind)
	require.Equal(t, "hello", doc.Root.Value)
	require.Equal(t, "!!str", doc.Root.Tag)
}

func TestBuilderSequence(t *testing.T) {
	doc := buildOne(t, "- a\n- b\n- c\n")
	require.Equal(t, SequenceNode, doc.Root.Kind)
	require.Len(t, doc.Root.Content, 3)
	require.Equal(t, "a", doc.Root.Content[0].Value)
	require.Equal(t, "c", doc.Root.Content[2].Value)
}

func TestBuilderMapping(t *testing.T) {
	doc := buildOne(t, "a: 1\nb: 2\n")
	require.Equal(t, MappingNode, doc.Root.Kind)
	pairs := doc.Root.Pairs()
	require.Len(t, pairs, 2)
	require.Equal(t, "a", pairs[0].Key.Value)
	require.Equal(t, "1", pairs[0].Value.Value)
	require.Equal(t, "!!int", pairs[0].Value.Tag)
	require.Equal(t, "b", pairs[1].Key.Value)
}

func TestBuilderNestedContainers(t *testing.T) {
	doc := buildOne(t, "a:\n  - 1\n  - 2\nb: {x: 1, y: 2}\n")
	pairs := doc.Root.Pairs()
	require.Len(t, pairs, 2)
	require.Equal(t, SequenceNode, pairs[0].Value.Kind)
	require.Len(t, pairs[0].Value.Content, 2)
	require.Equal(t, MappingNode, pairs[1].Value.Kind)
	require.Equal(t, FlowStyle, pairs[1].Value.Style&FlowStyle)
}

func TestBuilderAnchorAndAlias(t *testing.T) {
	doc := buildOne(t, "a: &anchor foo\nb: *anchor\n")
	pairs := doc.Root.Pairs()
	require.Equal(t, "anchor", pairs[0].Value.Anchor)
	require.Equal(t, AliasNode, pairs[1].Value.Kind)
	require.Equal(t, "anchor", pairs[1].Value.Value)

	require.NoError(t, Resolve(doc))
	require.Same(t, pairs[0].Value, pairs[1].Value.Alias)
}

func TestBuilderMultipleDocuments(t *testing.T) {
	b := NewBuilder(strings.NewReader("---\na\n---\nb\n"))
	first, err := b.BuildDocument()
	require.NoError(t, err)
	require.Equal(t, "a", first.Root.Value)

	second, err := b.BuildDocument()
	require.NoError(t, err)
	require.Equal(t, "b", second.Root.Value)

	third, err := b.BuildDocument()
	require.NoError(t, err)
	require.Nil(t, third)
}

func TestBuilderEmptyDocument(t *testing.T) {
	// A stream holding only a line break contains no document, so the
	// builder reports end of stream straight away.
	b := NewBuilder(strings.NewReader("\n"))
	doc, err := b.BuildDocument()
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestBuilderDuplicateKeyWarns(t *testing.T) {
	doc := buildOne(t, "a: 1\na: 2\n")
	pairs := doc.Root.Pairs()
	require.Len(t, pairs, 2)

	diags := doc.Diagnostics.Items()
	require.Len(t, diags, 1)
	require.Equal(t, LevelWarning, diags[0].Level)
	require.Equal(t, ModuleBuild, diags[0].Module)
}

func TestBuilderNoDuplicateKeyWarningForDistinctKeys(t *testing.T) {
	doc := buildOne(t, "a: 1\nb: 2\n")
	require.Empty(t, doc.Diagnostics.Items())
}
