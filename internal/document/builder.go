package document

import (
	"fmt"
	"io"

	"github.com/libfyaml-go/fyaml/internal/parserc"
	"github.com/libfyaml-go/fyaml/internal/resolve"
	"github.com/libfyaml-go/fyaml/internal/yamlh"
)

// Builder subscribes to a parser's event stream and assembles a Document
// tree (spec §4.5). It maintains a stack of open containers; every
// scalar/alias/collection-start event attaches its node to the top
// container (or becomes the root when the stack is empty).
type Builder struct {
	parser *parserc.YamlParser
	stack  []*Node
	doc    *Document
}

// NewBuilder wraps a YamlParser. Callers drive it with Next/BuildDocument.
func NewBuilder(r io.Reader) *Builder {
	return &Builder{parser: parserc.New(r)}
}

// expect pulls the next event and fails unless it matches want.
func (b *Builder) expect(want yamlh.EventType) (*yamlh.Event, error) {
	ev, err := parserc.Parse(b.parser)
	if err != nil {
		return nil, err
	}
	if ev.Type != want {
		return nil, fmt.Errorf("yaml: expected %s event but got %s", want, ev.Type)
	}
	return ev, nil
}

// BuildDocument consumes one document's worth of events (STREAM-START is
// consumed lazily on first call) and returns its tree, or (nil, nil) at
// end of stream.
func (b *Builder) BuildDocument() (*Document, error) {
	if b.doc == nil {
		if _, err := b.expect(yamlh.STREAM_START_EVENT); err != nil {
			return nil, err
		}
	}

	ev, err := parserc.Parse(b.parser)
	if err != nil {
		return nil, err
	}
	if ev.Type == yamlh.STREAM_END_EVENT {
		return nil, nil
	}
	if ev.Type != yamlh.DOCUMENT_START_EVENT {
		return nil, fmt.Errorf("yaml: expected document start event but got %s", ev.Type)
	}

	b.doc = newDocument()
	b.doc.VersionDirective = ev.Version_directive
	b.doc.TagDirectives = ev.Tag_directives
	b.doc.StartImplicit = ev.Implicit
	b.stack = b.stack[:0]

	root, err := b.parseNode()
	if err != nil {
		return nil, err
	}
	b.doc.Root = root

	end, err := b.expect(yamlh.DOCUMENT_END_EVENT)
	if err != nil {
		return nil, err
	}
	b.doc.EndImplicit = end.Implicit

	if len(b.stack) != 0 {
		return nil, fmt.Errorf("yaml: internal error: container stack not empty at document end")
	}
	return b.doc, nil
}

// parseNode consumes one node's worth of events (which may itself be a
// whole subtree for a collection) and attaches it under the current stack
// top, returning the node that was built.
func (b *Builder) parseNode() (*Node, error) {
	ev, err := parserc.Parse(b.parser)
	if err != nil {
		return nil, err
	}
	return b.buildFromEvent(ev)
}

func (b *Builder) attach(n *Node) {
	n.Document = b.doc
	if len(b.stack) == 0 {
		return
	}
	parent := b.stack[len(b.stack)-1]
	n.Parent = parent
	parent.Content = append(parent.Content, n)
}

func (b *Builder) recordAnchor(n *Node, anchor []byte) {
	if len(anchor) == 0 {
		return
	}
	n.Anchor = string(anchor)
	// Duplicate anchor: later wins as the live lookup target, but the
	// earlier node is still reachable through any alias captured before
	// this point (spec §4.5) since that alias already holds its pointer.
	b.doc.anchors[n.Anchor] = n
}

func (b *Builder) buildScalar(ev *yamlh.Event) (*Node, error) {
	style := scalarStyle(ev.Scalar_style())
	value := string(ev.Value)
	defaultTag := ""
	if style == AnyStyle && value == "<<" {
		defaultTag = resolve.MergeTag
	} else if style != AnyStyle {
		defaultTag = resolve.StrTag
	}
	tag, err := b.doc.resolveTag(ScalarNode, string(ev.Tag), defaultTag, value)
	if err != nil {
		return nil, err
	}
	n := &Node{
		Kind:        ScalarNode,
		Style:       style,
		Tag:         tag,
		Value:       value,
		Line:        ev.Start_mark.Line + 1,
		Column:      ev.Start_mark.Column + 1,
		HeadComment: string(ev.Head_comment),
		LineComment: string(ev.Line_comment),
		FootComment: string(ev.Foot_comment),
	}
	b.attach(n)
	b.recordAnchor(n, ev.Anchor)
	return n, nil
}

func (b *Builder) buildAlias(ev *yamlh.Event) (*Node, error) {
	n := &Node{
		Kind:   AliasNode,
		Value:  string(ev.Anchor),
		Line:   ev.Start_mark.Line + 1,
		Column: ev.Start_mark.Column + 1,
	}
	b.attach(n)
	return n, nil
}

func (b *Builder) buildSequence(ev *yamlh.Event) (*Node, error) {
	style := AnyStyle
	if yamlh.YamlSequenceStyle(ev.Style) == yamlh.FLOW_SEQUENCE_STYLE {
		style = FlowStyle
	}
	tag, err := b.doc.resolveTag(SequenceNode, string(ev.Tag), resolve.SeqTag, "")
	if err != nil {
		return nil, err
	}
	n := &Node{
		Kind:        SequenceNode,
		Style:       style,
		Tag:         tag,
		Line:        ev.Start_mark.Line + 1,
		Column:      ev.Start_mark.Column + 1,
		HeadComment: string(ev.Head_comment),
	}
	b.attach(n)
	b.recordAnchor(n, ev.Anchor)

	b.stack = append(b.stack, n)
	for {
		peeked, err := parserc.Parse(b.parser)
		if err != nil {
			return nil, err
		}
		if peeked.Type == yamlh.SEQUENCE_END_EVENT {
			n.FootComment = string(peeked.Foot_comment)
			break
		}
		if _, err := b.buildFromEvent(peeked); err != nil {
			return nil, err
		}
	}
	b.stack = b.stack[:len(b.stack)-1]
	return n, nil
}

func (b *Builder) buildMapping(ev *yamlh.Event) (*Node, error) {
	style := AnyStyle
	if yamlh.YamlMappingStyle(ev.Style) == yamlh.FLOW_MAPPING_STYLE {
		style = FlowStyle
	}
	tag, err := b.doc.resolveTag(MappingNode, string(ev.Tag), resolve.MapTag, "")
	if err != nil {
		return nil, err
	}
	n := &Node{
		Kind:        MappingNode,
		Style:       style,
		Tag:         tag,
		Line:        ev.Start_mark.Line + 1,
		Column:      ev.Start_mark.Column + 1,
		HeadComment: string(ev.Head_comment),
	}
	b.attach(n)
	b.recordAnchor(n, ev.Anchor)

	b.stack = append(b.stack, n)
	for {
		peeked, err := parserc.Parse(b.parser)
		if err != nil {
			return nil, err
		}
		if peeked.Type == yamlh.MAPPING_END_EVENT {
			n.FootComment = string(peeked.Foot_comment)
			break
		}
		if _, err := b.buildFromEvent(peeked); err != nil {
			return nil, err
		}
	}
	b.stack = b.stack[:len(b.stack)-1]
	b.checkDuplicateKeys(n)
	return n, nil
}

// checkDuplicateKeys records a warning diagnostic for each mapping key that
// repeats an earlier scalar key's text; the first occurrence is the one any
// later by-key lookup should use ("treat post-resolution duplicates as a
// warning and keep the first occurrence"). Both entries stay in Content so
// the tree still round-trips exactly.
func (b *Builder) checkDuplicateKeys(n *Node) {
	seen := make(map[string]bool, len(n.Content)/2)
	for _, pair := range n.Pairs() {
		if pair.Key.Kind != ScalarNode {
			continue
		}
		if seen[pair.Key.Value] {
			b.doc.Diagnostics.Add(&Diagnostic{
				Level:   LevelWarning,
				Module:  ModuleBuild,
				Message: fmt.Sprintf("duplicate mapping key %q, first occurrence wins", pair.Key.Value),
				Line:    pair.Key.Line,
				Column:  pair.Key.Column,
			})
			continue
		}
		seen[pair.Key.Value] = true
	}
}

// buildFromEvent dispatches an already-pulled event to the matching build*
// method, used both by parseNode and by the sequence/mapping loops which
// must peek past their end event before deciding whether to recurse.
func (b *Builder) buildFromEvent(ev *yamlh.Event) (*Node, error) {
	switch ev.Type {
	case yamlh.SCALAR_EVENT:
		return b.buildScalar(ev)
	case yamlh.ALIAS_EVENT:
		return b.buildAlias(ev)
	case yamlh.SEQUENCE_START_EVENT:
		return b.buildSequence(ev)
	case yamlh.MAPPING_START_EVENT:
		return b.buildMapping(ev)
	default:
		return nil, fmt.Errorf("yaml: unexpected event %s while building container", ev.Type)
	}
}

func scalarStyle(s yamlh.YamlScalarStyle) Style {
	switch {
	case s&yamlh.DOUBLE_QUOTED_SCALAR_STYLE != 0:
		return DoubleQuotedStyle
	case s&yamlh.SINGLE_QUOTED_SCALAR_STYLE != 0:
		return SingleQuotedStyle
	case s&yamlh.LITERAL_SCALAR_STYLE != 0:
		return LiteralStyle
	case s&yamlh.FOLDED_SCALAR_STYLE != 0:
		return FoldedStyle
	}
	return AnyStyle
}
