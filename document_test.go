package yaml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	yaml "github.com/libfyaml-go/fyaml"
)

func TestEqualFollowsAliases(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("a: &x {n: 1}\nb: *x\n"))
	require.NoError(t, err)

	pairs := doc.Root.Pairs()
	require.True(t, yaml.Equal(pairs[0].Value, pairs[1].Value.Alias))
}

func TestEqualRejectsDifferentScalars(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("a: 1\nb: 2\n"))
	require.NoError(t, err)

	pairs := doc.Root.Pairs()
	require.False(t, yaml.Equal(pairs[0].Value, pairs[1].Value))
}

func TestRenderDiagnostic(t *testing.T) {
	p := yaml.NewParser(strings.NewReader("a: 1\na: 2\n"), true)
	_, err := p.Next()
	require.NoError(t, err)
	require.NotEmpty(t, p.Diagnostics())

	var buf bytes.Buffer
	yaml.RenderDiagnostic(&buf, p.Diagnostics()[0])
	require.NotEmpty(t, buf.String())
}
