package yaml

import (
	"io"

	"github.com/libfyaml-go/fyaml/internal/parserc"
	"github.com/libfyaml-go/fyaml/internal/yamlh"
)

// Event is one token of the parser's event stream (spec §2's token→event
// pipeline): STREAM-START/END, DOCUMENT-START/END, SCALAR, SEQUENCE/MAPPING
// START/END, ALIAS.
type Event = yamlh.Event

// EventType tags which kind of Event was produced.
type EventType = yamlh.EventType

const (
	StreamStartEvent   = yamlh.STREAM_START_EVENT
	StreamEndEvent     = yamlh.STREAM_END_EVENT
	DocumentStartEvent = yamlh.DOCUMENT_START_EVENT
	DocumentEndEvent   = yamlh.DOCUMENT_END_EVENT
	AliasEvent         = yamlh.ALIAS_EVENT
	ScalarEvent        = yamlh.SCALAR_EVENT
	SequenceStartEvent = yamlh.SEQUENCE_START_EVENT
	SequenceEndEvent   = yamlh.SEQUENCE_END_EVENT
	MappingStartEvent  = yamlh.MAPPING_START_EVENT
	MappingEndEvent    = yamlh.MAPPING_END_EVENT
)

// EventStream drives the scanner/parser over r one event at a time without
// building a document tree (spec §6's `--streaming` verb: "parse events
// without building a document"). fn is called once per event, in document
// order; an error returned from fn stops the stream early.
func EventStream(r io.Reader, fn func(*Event) error) error {
	p := parserc.New(r)
	for {
		ev, err := parserc.Parse(p)
		if err != nil {
			return err
		}
		if err := fn(ev); err != nil {
			return err
		}
		if ev.Type == yamlh.STREAM_END_EVENT {
			return nil
		}
	}
}
