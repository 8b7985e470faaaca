// Package yaml is a streaming YAML 1.1/1.2 core: scanner, parser, document
// builder, alias resolver, emitter, and a path-expression navigation
// engine, built around the same reader/scanner/parser/emitter pipeline as
// libyaml.
package yaml

import (
	"io"

	"github.com/libfyaml-go/fyaml/internal/document"
)

// Diagnostic is a leveled, mark-carrying, module-tagged error or notice
// produced by any stage of the pipeline (scan, parse, resolve, build, emit,
// path). It implements the error interface so it flows through ordinary
// (value, error) returns.
type Diagnostic = document.Diagnostic

// Diagnostic severity levels.
const (
	LevelDebug   = document.LevelDebug
	LevelNotice  = document.LevelNotice
	LevelWarning = document.LevelWarning
	LevelError   = document.LevelError
)

// Diagnostic module tags, naming which stage raised a Diagnostic.
const (
	ModuleScan  = document.ModuleScan
	ModuleParse = document.ModuleParse
	ModuleDoc   = document.ModuleDoc
	ModuleBuild = document.ModuleBuild
	ModuleEmit  = document.ModuleEmit
	ModulePath  = document.ModulePath
)

// RenderDiagnostic pretty-prints d to w, underlining the offending span
// with `^`/`~` when a source line is attached. Colorized only when w is a
// terminal.
func RenderDiagnostic(w io.Writer, d *Diagnostic) {
	document.RenderDiagnostic(w, d)
}
