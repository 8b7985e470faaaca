package document

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Level is a diagnostic's severity (spec §7).
type Level int8

const (
	LevelDebug Level = iota
	LevelNotice
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelNotice:
		return "notice"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Module tags which subsystem raised a Diagnostic.
type Module string

const (
	ModuleScan  Module = "SCAN"
	ModuleParse Module = "PARSE"
	ModuleDoc   Module = "DOC"
	ModuleBuild Module = "BUILD"
	ModuleEmit  Module = "EMIT"
	ModulePath  Module = "PATH"
)

// Diagnostic is a leveled, mark-carrying, module-tagged error or notice. It
// implements the error interface so it can flow through ordinary (value,
// error) returns per spec §7/SPEC_FULL §10.2.
type Diagnostic struct {
	Level   Level
	Module  Module
	Message string

	Line, Column int
	SourceLine   string // the offending source line, for ^/~ underlining; optional
	Span         int    // number of characters to underline, minimum 1
}

func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s [%s]: %s (line %d, column %d)", d.Level, d.Module, d.Message, d.Line, d.Column)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Level, d.Module, d.Message)
}

// Diagnostics is the sink a Parser/Emitter/path compiler collects into.
// Errors are sticky: once the first error is recorded, later diagnostics at
// ERROR level are downgraded to notices, mirroring the teacher's scanner/
// parser "first error wins" behavior (internal/parserc's stream_error
// field), generalized to a queryable collection.
type Diagnostics struct {
	items    []*Diagnostic
	hadError bool
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Add(diag *Diagnostic) {
	if diag.Level == LevelError {
		if d.hadError {
			diag.Level = LevelNotice
		} else {
			d.hadError = true
		}
	}
	d.items = append(d.items, diag)
}

func (d *Diagnostics) Items() []*Diagnostic { return d.items }

func (d *Diagnostics) HasError() bool { return d.hadError }

var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	markStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
)

// RenderDiagnostic formats a Diagnostic for a human, with a `^`/`~`
// underline under the offending span when SourceLine is set. Colorization
// is applied only when w is a terminal (checked via go-isatty against the
// file descriptor of an *os.File; non-file writers are never colorized).
func RenderDiagnostic(w io.Writer, d *Diagnostic) {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	tag := fmt.Sprintf("%s [%s]", d.Level, d.Module)
	if colorize {
		switch d.Level {
		case LevelError:
			tag = errorStyle.Render(tag)
		case LevelWarning:
			tag = warningStyle.Render(tag)
		default:
			tag = mutedStyle.Render(tag)
		}
	}
	fmt.Fprintf(w, "%s: %s\n", tag, d.Message)
	if d.SourceLine == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", d.SourceLine)
	span := d.Span
	if span < 1 {
		span = 1
	}
	col := d.Column - 1
	if col < 0 {
		col = 0
	}
	underline := strings.Repeat(" ", col) + "^" + strings.Repeat("~", span-1)
	if colorize {
		underline = markStyle.Render(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}
