package path

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libfyaml-go/fyaml/internal/document"
)

func mustDoc(t *testing.T, src string) *document.Document {
	t.Helper()
	b := document.NewBuilder(strings.NewReader(src))
	doc, err := b.BuildDocument()
	require.NoError(t, err)
	require.NotNil(t, doc)
	require.NoError(t, document.Resolve(doc))
	return doc
}

func mustQuery(t *testing.T, doc *document.Document, src string) Result {
	t.Helper()
	r, err := Query(doc, src)
	require.NoError(t, err)
	return r
}

func TestEvalMapKeyChain(t *testing.T) {
	doc := mustDoc(t, "a:\n  b: hello\n")
	r := mustQuery(t, doc, "/a/b")
	require.Equal(t, ResultNode, r.Kind)
	require.Equal(t, "hello", r.Node.Value)
}

func TestEvalSeqIndexAndSlice(t *testing.T) {
	doc := mustDoc(t, "items: [1, 2, 3, 4]\n")
	r := mustQuery(t, doc, "/items/[1]")
	require.Equal(t, ResultNode, r.Kind)
	require.Equal(t, "2", r.Node.Value)

	r2 := mustQuery(t, doc, "/items/[1:3]")
	require.Equal(t, ResultList, r2.Kind)
	require.Len(t, r2.List, 2)
	require.Equal(t, "2", r2.List[0].Node.Value)
	require.Equal(t, "3", r2.List[1].Node.Value)

	r3 := mustQuery(t, doc, "/items/[-1]")
	require.Equal(t, ResultNode, r3.Kind)
	require.Equal(t, "4", r3.Node.Value)
}

func TestEvalEveryChild(t *testing.T) {
	doc := mustDoc(t, "a: 1\nb: 2\nc: 3\n")
	r := mustQuery(t, doc, "/*")
	require.Equal(t, ResultList, r.Kind)
	require.Len(t, r.List, 3)
}

func TestEvalEveryChildRecursive(t *testing.T) {
	doc := mustDoc(t, "a:\n  b:\n    c: 1\n")
	r := mustQuery(t, doc, "/**")
	require.Equal(t, ResultList, r.Kind)
	require.True(t, len(r.List) >= 3)
}

func TestEvalAliasRef(t *testing.T) {
	doc := mustDoc(t, "a: &x hello\nb: *x\n")
	r := mustQuery(t, doc, "*x")
	require.Equal(t, ResultNode, r.Kind)
	require.Equal(t, "hello", r.Node.Value)
}

func TestEvalMultiConcatenates(t *testing.T) {
	doc := mustDoc(t, "a: 1\nb: 2\n")
	r := mustQuery(t, doc, "/a,/b")
	require.Equal(t, ResultList, r.Kind)
	require.Len(t, r.List, 2)
	require.Equal(t, "1", r.List[0].Node.Value)
	require.Equal(t, "2", r.List[1].Node.Value)
}

func TestEvalLogicalOrShortCircuits(t *testing.T) {
	doc := mustDoc(t, "a: 1\n")
	r := mustQuery(t, doc, "/a || /missing")
	require.Equal(t, ResultNode, r.Kind)
	require.Equal(t, "1", r.Node.Value)

	r2 := mustQuery(t, doc, "/missing || /a")
	require.Equal(t, ResultNode, r2.Kind)
	require.Equal(t, "1", r2.Node.Value)
}

func TestEvalComparisonAndArithmetic(t *testing.T) {
	doc := mustDoc(t, "age: 30\n")
	e, err := Compile("/age == 30")
	require.NoError(t, err)
	r, err := Eval(e, doc, NodeResult(doc.Root))
	require.NoError(t, err)
	require.Equal(t, ResultScalar, r.Kind)
	require.Equal(t, true, r.Scalar)

	e2, err := Compile("/age == 20 + 10")
	require.NoError(t, err)
	r2, err := Eval(e2, doc, NodeResult(doc.Root))
	require.NoError(t, err)
	require.Equal(t, true, r2.Scalar)
}

func TestEvalFilterSuffixes(t *testing.T) {
	doc := mustDoc(t, "items:\n  - 1\n  - nested:\n      x: 1\n")
	r := mustQuery(t, doc, "/items/*$")
	require.Equal(t, ResultNode, r.Kind)
	require.Equal(t, document.ScalarNode, r.Node.Kind)

	r2 := mustQuery(t, doc, "/items/*%")
	require.Equal(t, ResultNode, r2.Kind)
	require.Equal(t, document.MappingNode, r2.Node.Kind)
}

func TestEvalFilterUniqueDedupes(t *testing.T) {
	doc := mustDoc(t, "a: 1\nb: 1\nc: 2\n")
	r := mustQuery(t, doc, "/*!")
	require.Equal(t, ResultList, r.Kind)
	require.Len(t, r.List, 2)
}

func TestEvalParentNavigation(t *testing.T) {
	doc := mustDoc(t, "a:\n  b: 1\n")
	r := mustQuery(t, doc, "/a/b/..")
	require.Equal(t, ResultNode, r.Kind)
	require.Equal(t, document.MappingNode, r.Node.Kind)
}

func TestEvalUndefinedAliasErrors(t *testing.T) {
	doc := mustDoc(t, "a: 1\n")
	_, err := Query(doc, "*missing")
	require.Error(t, err)
}
