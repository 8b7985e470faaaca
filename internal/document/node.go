// Package document implements the Document/Node tree (spec §3, §4.5, §4.6):
// the event-consuming builder, alias resolver, and diagnostic sink that sit
// between the parser's event stream and a caller wanting a navigable tree.
package document

import (
	"github.com/libfyaml-go/fyaml/internal/resolve"
	"github.com/libfyaml-go/fyaml/internal/yamlh"
)

// Kind is a node's structural variant.
type Kind int8

const (
	ScalarNode Kind = iota
	SequenceNode
	MappingNode
	AliasNode
	DocumentNode
)

func (k Kind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case SequenceNode:
		return "sequence"
	case MappingNode:
		return "mapping"
	case AliasNode:
		return "alias"
	case DocumentNode:
		return "document"
	}
	return "unknown"
}

// Style records the scalar/collection style a node was read in (or should be
// emitted in), as a bitmask so a scalar node can carry both a quoting style
// and the "tagged" flag simultaneously.
type Style int8

const (
	AnyStyle Style = 0

	TaggedStyle Style = 1 << iota
	DoubleQuotedStyle
	SingleQuotedStyle
	LiteralStyle
	FoldedStyle
	FlowStyle
)

// Node is one node of a parsed document: a scalar, a sequence, a mapping, or
// an alias. Mappings are stored as a flat, order-preserving Content slice of
// alternating key/value nodes, mirroring the teacher's Node.Content
// convention for MappingNode.
type Node struct {
	Kind  Kind
	Style Style
	Tag   string
	Value string

	Anchor string
	Alias  *Node // resolved target, set by Resolve (nil until then)

	Content []*Node

	Parent   *Node
	Document *Document

	Line, Column int

	HeadComment string
	LineComment string
	FootComment string
}

// IsZero reports whether n is the empty node (used for "no document").
func (n *Node) IsZero() bool {
	return n == nil
}

// Pairs returns a mapping node's Content as key/value pairs. It returns nil
// if n is not a MappingNode, and ignores a trailing key with no value if
// Content has an odd length.
func (n *Node) Pairs() []Pair {
	if n.Kind != MappingNode {
		return nil
	}
	pairs := make([]Pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, Pair{Key: n.Content[i], Value: n.Content[i+1]})
	}
	return pairs
}

// Pair is a mapping key/value, returned by Node.Pairs for convenience; the
// canonical storage remains the flat Content slice.
type Pair struct {
	Key, Value *Node
}

// Document owns a root node, the anchor table gathered while building it,
// the document state inherited from its DOCUMENT-START event, and the
// diagnostics accumulated while building and resolving it.
type Document struct {
	Root *Node

	anchors map[string]*Node

	VersionDirective *yamlh.VersionDirective
	TagDirectives    []yamlh.TagDirective
	StartImplicit    bool
	EndImplicit      bool

	Diagnostics *Diagnostics
}

func newDocument() *Document {
	return &Document{
		anchors:     make(map[string]*Node),
		Diagnostics: NewDiagnostics(),
	}
}

// Anchor looks up a previously-recorded anchor by name.
func (d *Document) Anchor(name string) (*Node, bool) {
	n, ok := d.anchors[name]
	return n, ok
}

// resolveVersion reports which core schema's implicit-typing rules apply to
// this document, per its %YAML directive (absent directive defaults to 1.2,
// matching the teacher's and libyaml's own default).
func (d *Document) resolveVersion() resolve.Version {
	if d.VersionDirective != nil && d.VersionDirective.Major == 1 && d.VersionDirective.Minor == 1 {
		return resolve.Version11
	}
	return resolve.Version12
}

// resolveTag assigns the node's effective tag: an explicit tag wins, a
// collection falls back to its structural default, and an untagged scalar
// is resolved against the implicit-typing table (spec §4.6).
func (d *Document) resolveTag(kind Kind, explicitTag, defaultTag, value string) (string, error) {
	if explicitTag != "" && explicitTag != "!" {
		return resolve.ShortTag(explicitTag), nil
	}
	if defaultTag != "" {
		return defaultTag, nil
	}
	if kind == ScalarNode {
		tag, _, err := resolve.ResolveWithVersion("", value, d.resolveVersion())
		if err != nil {
			return "", err
		}
		return tag, nil
	}
	return "", nil
}
