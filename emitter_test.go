package yaml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	yaml "github.com/libfyaml-go/fyaml"
)

func TestEmitDocumentFlowSourceToBlockMode(t *testing.T) {
	// Scenario S1: a flow-style source re-emitted in block mode must come
	// out in exact block style, regardless of how the source was written.
	doc, err := yaml.Parse(strings.NewReader("{a: 1, b: [x, y]}\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	e.SetMode(yaml.BlockMode)
	require.NoError(t, e.EmitDocument(doc))
	require.NoError(t, e.Close())

	require.Equal(t, "a: 1\nb:\n    - x\n    - y\n", buf.String())
}

func TestEmitDocumentBlockSourceToFlowMode(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("a: 1\nb:\n  - x\n  - y\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	e.SetMode(yaml.FlowMode)
	require.NoError(t, e.EmitDocument(doc))
	require.NoError(t, e.Close())

	require.Equal(t, "{a: 1, b: [x, y]}\n", buf.String())
}

func TestEmitDocumentSortKeys(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("z: 1\na: 2\nm: 3\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	e.SetSortKeys(true)
	require.NoError(t, e.EmitDocument(doc))
	require.NoError(t, e.Close())

	require.Equal(t, "a: 2\nm: 3\nz: 1\n", buf.String())
}

func TestEmitDocumentStripTags(t *testing.T) {
	// Dropping the explicit !!str tag leaves nothing forcing quoted output,
	// so the scalar falls back to plain, implicit typing (now an int).
	doc, err := yaml.Parse(strings.NewReader("a: !!str 1\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	e.SetStripTags(true)
	require.NoError(t, e.EmitDocument(doc))
	require.NoError(t, e.Close())

	require.Equal(t, "a: 1\n", buf.String())
}

func TestMarshalDefaultsToBlockMode(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("{a: 1}\n"))
	require.NoError(t, err)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "a: 1\n", string(out))
}

func TestEmitDocumentJSONMode(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("a: true\nb: 3.5\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	e.SetMode(yaml.JSONMode)
	require.NoError(t, e.EmitDocument(doc))
	require.NoError(t, e.Close())

	require.Equal(t, `{"a": true, "b": 3.5}`+"\n", buf.String())
}

func TestEmitDocumentPreservesYAML12VersionDirective(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("%YAML 1.2\n---\na: 1\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	e := yaml.NewEmitter(&buf)
	require.NoError(t, e.EmitDocument(doc))
	require.NoError(t, e.Close())

	require.Contains(t, buf.String(), "%YAML 1.2")
}
