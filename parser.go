package yaml

import (
	"fmt"
	"io"

	"github.com/libfyaml-go/fyaml/internal/document"
)

// Parser reads a stream of YAML documents (spec §4.3/§4.5): each call to
// Next builds and returns the next document's tree, or (nil, nil) once the
// stream is exhausted.
type Parser struct {
	builder *document.Builder
	resolve bool
	diags   []*Diagnostic
}

// NewParser wraps r as a document stream. When resolve is true, each
// document Next returns has already had the alias resolver (spec §4.6) run
// over it.
func NewParser(r io.Reader, resolve bool) *Parser {
	return &Parser{builder: document.NewBuilder(r), resolve: resolve}
}

// Next consumes one document's worth of events and returns its tree, or
// (nil, nil) at end of stream.
func (p *Parser) Next() (*Document, error) {
	doc, err := p.builder.BuildDocument()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	if p.resolve {
		if err := document.Resolve(doc); err != nil {
			return nil, err
		}
	}
	p.diags = append(p.diags, doc.Diagnostics.Items()...)
	return doc, nil
}

// Diagnostics returns every diagnostic accumulated across all documents
// this Parser has produced so far, in the order they were raised.
func (p *Parser) Diagnostics() []*Diagnostic { return p.diags }

// Parse reads exactly one document from r, with alias resolution applied.
func Parse(r io.Reader) (*Document, error) {
	p := NewParser(r, true)
	doc, err := p.Next()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("yaml: empty input, no document found")
	}
	return doc, nil
}

// ParseAll drains r, returning every document the stream contains.
func ParseAll(r io.Reader, resolve bool) ([]*Document, error) {
	p := NewParser(r, resolve)
	var docs []*Document
	for {
		doc, err := p.Next()
		if err != nil {
			return docs, err
		}
		if doc == nil {
			return docs, nil
		}
		docs = append(docs, doc)
	}
}

// WriteTestsuite parses r and writes its event stream in the testsuite
// event grammar (spec §6: `+STR`, `+DOC`, `+MAP {}`, `+SEQ []`, `=VAL`,
// `=ALI`, `-MAP`, `-SEQ`, `-DOC`, `-STR`) to w.
func WriteTestsuite(w io.Writer, r io.Reader) error {
	return document.WriteTestsuiteEvents(w, r)
}
