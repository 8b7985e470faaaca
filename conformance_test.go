package yaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	yamlv3 "go.yaml.in/yaml/v3"

	yaml "github.com/libfyaml-go/fyaml"
)

// conformanceCases is a curated subset of the teacher's fuzz corpus, trimmed
// to the core schema both this port's internal/resolve table and yaml.v3
// agree on (no YAML 1.1 yes/no/octal-with-0 oddities, which the two
// resolvers classify differently).
var conformanceCases = []string{
	`{}`,
	`v: hi`,
	`v: true`,
	`v: false`,
	`v: 10`,
	`v: -10`,
	`v: 4294967296`,
	`v: 0.1`,
	`v: .1`,
	`v: .inf`,
	`v: -.inf`,
	`v: .nan`,
	`canonical: ~`,
	`english: null`,
	`empty:`,
	`seq: [A,B]`,
	`seq: [A,B,C]`,
	"seq:\n  - A\n  - B",
	"seq:\n  - A\n  - 1\n  - C",
	`a: {b: c}`,
	`a: [b,c,d]`,
	"scalar: |\n  literal\n  text\n",
	"scalar: >\n  folded\n  line\n",
	`v: !!float '1.1'`,
	`'1': '2'`,
	"a: &x 1\nb: &y 2\nc: *x\nd: *y\n",
	"a: &a {c: 1}\nb: *a",
	"a: &a [1, 2]\nb: *a",
	`foo: ''`,
	`foo: null`,
}

func v3KindName(k yamlv3.Kind) string {
	switch k {
	case yamlv3.ScalarNode:
		return "scalar"
	case yamlv3.SequenceNode:
		return "sequence"
	case yamlv3.MappingNode:
		return "mapping"
	case yamlv3.AliasNode:
		return "alias"
	case yamlv3.DocumentNode:
		return "document"
	}
	return "unknown"
}

func compareNode(t *testing.T, src string, ours *yaml.Node, theirs *yamlv3.Node) {
	t.Helper()
	require.Equal(t, v3KindName(theirs.Kind), ours.Kind.String(), "kind mismatch for %q", src)

	switch ours.Kind {
	case yaml.ScalarNode:
		require.Equal(t, theirs.Tag, ours.Tag, "tag mismatch for %q", src)
		require.Equal(t, theirs.Value, ours.Value, "value mismatch for %q", src)
	case yaml.AliasNode:
		require.Equal(t, theirs.Value, ours.Value, "anchor name mismatch for %q", src)
	case yaml.SequenceNode, yaml.MappingNode:
		require.Len(t, ours.Content, len(theirs.Content), "content length mismatch for %q", src)
		for i := range ours.Content {
			compareNode(t, src, ours.Content[i], theirs.Content[i])
		}
	}
}

func TestConformanceAgainstYAMLv3(t *testing.T) {
	for _, src := range conformanceCases {
		src := src
		t.Run(src, func(t *testing.T) {
			ours, err := yaml.Parse(strings.NewReader(src))
			require.NoError(t, err)

			var theirsDoc yamlv3.Node
			require.NoError(t, yamlv3.Unmarshal([]byte(src), &theirsDoc))
			require.Len(t, theirsDoc.Content, 1)

			compareNode(t, src, ours.Root, theirsDoc.Content[0])
		})
	}
}
