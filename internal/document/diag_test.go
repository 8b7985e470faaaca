package document

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticsDowngradesAfterFirstError(t *testing.T) {
	d := NewDiagnostics()
	d.Add(&Diagnostic{Level: LevelError, Module: ModuleScan, Message: "first"})
	d.Add(&Diagnostic{Level: LevelError, Module: ModuleScan, Message: "second"})

	require.True(t, d.HasError())
	require.Len(t, d.Items(), 2)
	require.Equal(t, LevelError, d.Items()[0].Level)
	require.Equal(t, LevelNotice, d.Items()[1].Level)
}

func TestRenderDiagnosticPlain(t *testing.T) {
	var buf bytes.Buffer
	d := &Diagnostic{
		Level:      LevelError,
		Module:     ModuleParse,
		Message:    "unexpected token",
		Line:       3,
		Column:     5,
		SourceLine: "foo: : bar",
		Span:       1,
	}
	RenderDiagnostic(&buf, d)
	out := buf.String()
	require.Contains(t, out, "unexpected token")
	require.Contains(t, out, "foo: : bar")
	require.Contains(t, out, "^")
}
