package yaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	yaml "github.com/libfyaml-go/fyaml"
)

func TestParseScalar(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("hello\n"))
	require.NoError(t, err)
	require.Equal(t, yaml.ScalarNode, doc.Root.Kind)
	require.Equal(t, "hello", doc.Root.Value)
}

func TestParseEmptyInputErrors(t *testing.T) {
	_, err := yaml.Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseAllMultiDocument(t *testing.T) {
	docs, err := yaml.ParseAll(strings.NewReader("a: 1\n---\nb: 2\n"), true)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "a", docs[0].Root.Pairs()[0].Key.Value)
	require.Equal(t, "b", docs[1].Root.Pairs()[0].Key.Value)
}

func TestParserDiagnosticsAccumulateAcrossDocuments(t *testing.T) {
	// A duplicate key in each document raises a warning-level diagnostic
	// (DESIGN.md's "duplicate keys" decision); Parser must keep both.
	src := "a: 1\na: 2\n---\nb: 1\nb: 2\n"
	p := yaml.NewParser(strings.NewReader(src), true)

	doc1, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, doc1)

	doc2, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, doc2)

	doc3, err := p.Next()
	require.NoError(t, err)
	require.Nil(t, doc3)

	require.GreaterOrEqual(t, len(p.Diagnostics()), 2)
}

func TestParserResolveFalseSkipsAliasResolution(t *testing.T) {
	p := yaml.NewParser(strings.NewReader("a: &x 1\nb: *x\n"), false)
	doc, err := p.Next()
	require.NoError(t, err)
	pairs := doc.Root.Pairs()
	require.Equal(t, yaml.AliasNode, pairs[1].Value.Kind)
	require.Nil(t, pairs[1].Value.Alias)
}

func TestParserResolveTrueResolvesAlias(t *testing.T) {
	p := yaml.NewParser(strings.NewReader("a: &x 1\nb: *x\n"), true)
	doc, err := p.Next()
	require.NoError(t, err)
	pairs := doc.Root.Pairs()
	require.NotNil(t, pairs[1].Value.Alias)
	require.Equal(t, "1", pairs[1].Value.Alias.Value)
}

func TestParseAcceptsYAML12VersionDirective(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("%YAML 1.2\n---\nhello\n"))
	require.NoError(t, err)
	require.Equal(t, "hello", doc.Root.Value)
}

func TestParseAcceptsYAML11VersionDirective(t *testing.T) {
	doc, err := yaml.Parse(strings.NewReader("%YAML 1.1\n---\nhello\n"))
	require.NoError(t, err)
	require.Equal(t, "hello", doc.Root.Value)
}

func TestParseRejectsIncompatibleVersionDirective(t *testing.T) {
	_, err := yaml.Parse(strings.NewReader("%YAML 2.0\n---\nhello\n"))
	require.Error(t, err)
}

func TestParseResolvesBoolWordsPerVersionDirective(t *testing.T) {
	// "yes" is a plain string under the 1.2 core schema (the implicit
	// default with no directive) but a bool under 1.1's.
	doc12, err := yaml.Parse(strings.NewReader("a: yes\n"))
	require.NoError(t, err)
	require.Equal(t, "!!str", doc12.Root.Pairs()[0].Value.Tag)

	doc11, err := yaml.Parse(strings.NewReader("%YAML 1.1\n---\na: yes\n"))
	require.NoError(t, err)
	require.Equal(t, "!!bool", doc11.Root.Pairs()[0].Value.Tag)
}
