package yaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	yaml "github.com/libfyaml-go/fyaml"
)

func mustDoc(t *testing.T, src string) *yaml.Document {
	t.Helper()
	doc, err := yaml.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return doc
}

func TestQueryChainNavigation(t *testing.T) {
	doc := mustDoc(t, "owner:\n  name: alice\n  roles: [admin, editor]\n")

	r, err := yaml.Query(doc, "/owner/name")
	require.NoError(t, err)
	require.Equal(t, yaml.WalkNode, r.Kind)
	require.Equal(t, "alice", r.Node.Value)
}

func TestQueryEveryChild(t *testing.T) {
	doc := mustDoc(t, "tags: [red, green, blue]\n")

	r, err := yaml.Query(doc, "/tags/*")
	require.NoError(t, err)
	require.Equal(t, yaml.WalkList, r.Kind)
	require.Len(t, r.List, 3)
	require.Equal(t, "red", r.List[0].Node.Value)
}

func TestCompilePathReusedAcrossDocuments(t *testing.T) {
	expr, err := yaml.CompilePath("/name")
	require.NoError(t, err)

	doc1 := mustDoc(t, "name: widget\n")
	doc2 := mustDoc(t, "name: gadget\n")

	r1, err := yaml.EvalPath(expr, doc1, yaml.NodeResult(doc1.Root))
	require.NoError(t, err)
	require.Equal(t, "widget", r1.Node.Value)

	r2, err := yaml.EvalPath(expr, doc2, yaml.NodeResult(doc2.Root))
	require.NoError(t, err)
	require.Equal(t, "gadget", r2.Node.Value)
}

func TestQueryScalarComparison(t *testing.T) {
	doc := mustDoc(t, "age: 30\n")

	r, err := yaml.Query(doc, "/age == 30")
	require.NoError(t, err)
	require.Equal(t, yaml.WalkScalar, r.Kind)
	require.Equal(t, true, r.Scalar)
}
