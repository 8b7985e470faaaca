package yaml

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/libfyaml-go/fyaml/internal/document"
	"github.com/libfyaml-go/fyaml/internal/emitter"
	"github.com/libfyaml-go/fyaml/internal/resolve"
	"github.com/libfyaml-go/fyaml/internal/yamlh"
)

// Mode selects the emitter's default container style and scalar coercion
// policy (spec §4.7's Mode column: block, flow, flow-oneline, json,
// json-tp, json-oneline).
type Mode = emitter.Mode

const (
	BlockMode       = emitter.BlockMode
	FlowMode        = emitter.FlowMode
	FlowOnelineMode = emitter.FlowOnelineMode
	JSONMode        = emitter.JSONMode
	JSONTPMode      = emitter.JSONTPMode
	JSONOnelineMode = emitter.JSONOnelineMode
)

// Emitter writes documents as a YAML (or JSON-mode) stream (spec §4.7). It
// wraps the event-driven internal emitter with a tree walk so a caller can
// hand it whole Document/Node values instead of driving events by hand.
type Emitter struct {
	inner    *emitter.Emitter
	sortKeys bool
	started  bool
}

// NewEmitter wraps w. Configure it with SetMode/SetIndent/etc. before the
// first EmitDocument call; STREAM-START is written lazily on first use.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{inner: emitter.New(w)}
}

func (e *Emitter) SetMode(m Mode)          { e.inner.SetMode(m) }
func (e *Emitter) SetIndent(spaces int)    { e.inner.SetIndent(spaces) }
func (e *Emitter) SetWidth(width int)      { e.inner.SetWidth(width) }
func (e *Emitter) SetStripComments(v bool) { e.inner.SetStripComments(v) }
func (e *Emitter) SetStripTags(v bool)     { e.inner.SetStripTags(v) }
func (e *Emitter) SetStripLabels(v bool)   { e.inner.SetStripLabels(v) }

// SetSortKeys requests lexicographic mapping key ordering. Pairs are
// materialized in sorted order here, before any event reaches the wrapped
// emitter, since sort order depends on the whole tree being visible at once.
func (e *Emitter) SetSortKeys(sortKeys bool) {
	e.sortKeys = sortKeys
	e.inner.SetSortKeys(sortKeys)
}

func streamStartEvent() *yamlh.Event {
	return &yamlh.Event{Type: yamlh.STREAM_START_EVENT, Encoding: yamlh.UTF8_ENCODING}
}

func streamEndEvent() *yamlh.Event { return &yamlh.Event{Type: yamlh.STREAM_END_EVENT} }

func documentStartEvent() *yamlh.Event {
	return &yamlh.Event{Type: yamlh.DOCUMENT_START_EVENT, Implicit: true}
}

func documentEndEvent() *yamlh.Event {
	return &yamlh.Event{Type: yamlh.DOCUMENT_END_EVENT, Implicit: true}
}

func aliasEvent(anchor []byte) *yamlh.Event {
	return &yamlh.Event{Type: yamlh.ALIAS_EVENT, Anchor: anchor}
}

func scalarEvent(anchor, tag, value []byte, plainImplicit, quotedImplicit bool, style yamlh.YamlScalarStyle) *yamlh.Event {
	return &yamlh.Event{
		Type:            yamlh.SCALAR_EVENT,
		Anchor:          anchor,
		Tag:             tag,
		Value:           value,
		Implicit:        plainImplicit,
		Quoted_implicit: quotedImplicit,
		Style:           yamlh.YamlStyle(style),
	}
}

func sequenceStartEvent(anchor, tag []byte, implicit bool, style yamlh.YamlSequenceStyle) *yamlh.Event {
	return &yamlh.Event{Type: yamlh.SEQUENCE_START_EVENT, Anchor: anchor, Tag: tag, Implicit: implicit, Style: yamlh.YamlStyle(style)}
}

func sequenceEndEvent() *yamlh.Event { return &yamlh.Event{Type: yamlh.SEQUENCE_END_EVENT} }

func mappingStartEvent(anchor, tag []byte, implicit bool, style yamlh.YamlMappingStyle) *yamlh.Event {
	return &yamlh.Event{Type: yamlh.MAPPING_START_EVENT, Anchor: anchor, Tag: tag, Implicit: implicit, Style: yamlh.YamlStyle(style)}
}

func mappingEndEvent() *yamlh.Event { return &yamlh.Event{Type: yamlh.MAPPING_END_EVENT} }

// EmitDocument writes STREAM-START on first use, then the whole of doc as
// one document's events, tree-walking its root (spec §4.7 "tree-based
// emit_document(doc)").
func (e *Emitter) EmitDocument(doc *Document) error {
	if !e.started {
		if err := e.inner.Emit(streamStartEvent(), false); err != nil {
			return err
		}
		e.started = true
	}
	start := documentStartEvent()
	start.Version_directive = doc.VersionDirective
	start.Tag_directives = doc.TagDirectives
	start.Implicit = doc.StartImplicit
	if err := e.inner.Emit(start, false); err != nil {
		return err
	}
	if doc.Root != nil {
		if err := e.emitNode(doc.Root); err != nil {
			return err
		}
	}
	end := documentEndEvent()
	end.Implicit = doc.EndImplicit
	return e.inner.Emit(end, false)
}

// Close writes STREAM-END, finalizing the output.
func (e *Emitter) Close() error {
	if !e.started {
		if err := e.inner.Emit(streamStartEvent(), false); err != nil {
			return err
		}
		e.started = true
	}
	return e.inner.Emit(streamEndEvent(), true)
}

// effectiveTag decides the tag text to actually emit for n, returning ""
// when the tag can be left implicit. An explicit tag (TaggedStyle set) is
// always kept; otherwise a tag is dropped when it matches what the
// resolver would infer anyway (spec §4.6/§4.7), mirroring the teacher's
// encodeNode tag-dropping logic.
func effectiveTag(n *Node) (string, error) {
	if n.Tag == "" {
		return "", nil
	}
	stag := resolve.ShortTag(n.Tag)
	if n.Style&document.TaggedStyle != 0 {
		return stag, nil
	}
	switch n.Kind {
	case document.ScalarNode:
		if stag == resolve.StrTag && n.Style&(document.SingleQuotedStyle|document.DoubleQuotedStyle|document.LiteralStyle|document.FoldedStyle) != 0 {
			return "", nil
		}
		version := resolve.Version12
		if n.Document != nil && n.Document.VersionDirective != nil &&
			n.Document.VersionDirective.Major == 1 && n.Document.VersionDirective.Minor == 1 {
			version = resolve.Version11
		}
		rtag, _, err := resolve.ResolveWithVersion("", n.Value, version)
		if err != nil {
			return "", err
		}
		if rtag == stag {
			return "", nil
		}
	case document.MappingNode:
		if stag == resolve.MapTag {
			return "", nil
		}
	case document.SequenceNode:
		if stag == resolve.SeqTag {
			return "", nil
		}
	}
	return stag, nil
}

func (e *Emitter) sortedPairs(n *Node) []document.Pair {
	pairs := n.Pairs()
	if !e.sortKeys {
		return pairs
	}
	sorted := make([]document.Pair, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Key.Value < sorted[j].Key.Value })
	return sorted
}

func (e *Emitter) emitNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("yaml: cannot emit a nil node")
	}
	tag, err := effectiveTag(n)
	if err != nil {
		return err
	}
	var longTag []byte
	implicit := tag == ""
	if !implicit {
		longTag = []byte(resolve.LongTag(tag))
	}

	switch n.Kind {
	case document.ScalarNode:
		if !utf8.ValidString(n.Value) {
			return fmt.Errorf("yaml: cannot emit invalid UTF-8 scalar data")
		}
		style := scalarStyleOf(n.Style)
		ev := scalarEvent([]byte(n.Anchor), longTag, []byte(n.Value), implicit, implicit, style)
		e.applyComments(ev, n)
		return e.inner.Emit(ev, false)

	case document.SequenceNode:
		// Container style is decided by the configured Mode (see
		// SetMode/applyModePolicy), not by the style the source happened
		// to use, so a --mode flag can always override it: ANY here lets
		// the wrapped emitter pick block or flow.
		ev := sequenceStartEvent([]byte(n.Anchor), longTag, implicit, yamlh.ANY_SEQUENCE_STYLE)
		e.applyComments(ev, n)
		if err := e.inner.Emit(ev, false); err != nil {
			return err
		}
		for _, child := range n.Content {
			if err := e.emitNode(child); err != nil {
				return err
			}
		}
		end := sequenceEndEvent()
		end.Foot_comment = []byte(n.FootComment)
		return e.inner.Emit(end, false)

	case document.MappingNode:
		ev := mappingStartEvent([]byte(n.Anchor), longTag, implicit, yamlh.ANY_MAPPING_STYLE)
		e.applyComments(ev, n)
		if err := e.inner.Emit(ev, false); err != nil {
			return err
		}
		for _, pair := range e.sortedPairs(n) {
			if err := e.emitNode(pair.Key); err != nil {
				return err
			}
			if err := e.emitNode(pair.Value); err != nil {
				return err
			}
		}
		end := mappingEndEvent()
		end.Foot_comment = []byte(n.FootComment)
		return e.inner.Emit(end, false)

	case document.AliasNode:
		ev := aliasEvent([]byte(n.Value))
		e.applyComments(ev, n)
		return e.inner.Emit(ev, false)
	}
	return fmt.Errorf("yaml: unknown node kind %s", n.Kind)
}

func (e *Emitter) applyComments(ev *yamlh.Event, n *Node) {
	ev.Head_comment = []byte(n.HeadComment)
	ev.Line_comment = []byte(n.LineComment)
}

// scalarStyleOf maps a node's Style bitmask to the yamlh scalar style the
// emitter should request, defaulting to ANY (emitter picks) when the node
// carries no explicit quoting style.
func scalarStyleOf(s document.Style) yamlh.YamlScalarStyle {
	switch {
	case s&document.DoubleQuotedStyle != 0:
		return yamlh.DOUBLE_QUOTED_SCALAR_STYLE
	case s&document.SingleQuotedStyle != 0:
		return yamlh.SINGLE_QUOTED_SCALAR_STYLE
	case s&document.LiteralStyle != 0:
		return yamlh.LITERAL_SCALAR_STYLE
	case s&document.FoldedStyle != 0:
		return yamlh.FOLDED_SCALAR_STYLE
	}
	return yamlh.ANY_SCALAR_STYLE
}

// Marshal renders doc as YAML text using the default (block) mode. It is a
// convenience for the common one-document, default-options case; callers
// wanting Mode/indent/sort-keys control should use Emitter directly.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEmitter(&buf)
	if err := e.EmitDocument(doc); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
