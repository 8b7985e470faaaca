package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteTestsuiteEventsScalarMapping(t *testing.T) {
	var buf strings.Builder
	err := WriteTestsuiteEvents(&buf, strings.NewReader("a: 1\n"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"+STR",
		"+DOC",
		"+MAP",
		"=VAL :a",
		"=VAL :1",
		"-MAP",
		"-DOC",
		"-STR",
	}, lines)
}

func TestWriteTestsuiteEventsFlowSequenceAndAnchor(t *testing.T) {
	var buf strings.Builder
	err := WriteTestsuiteEvents(&buf, strings.NewReader("---\na: &x [1, 2]\nb: *x\n"))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "+DOC ---")
	require.Contains(t, out, "+SEQ &x []")
	require.Contains(t, out, "=ALI *x")
}
