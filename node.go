package yaml

import "github.com/libfyaml-go/fyaml/internal/document"

// Node is one node of a parsed document: a scalar, a sequence, a mapping,
// or an alias (spec §3). Mappings store their Content as a flat,
// order-preserving slice of alternating key/value nodes; use Pairs for the
// key/value view.
type Node = document.Node

// Kind is a node's structural variant.
type Kind = document.Kind

const (
	ScalarNode   = document.ScalarNode
	SequenceNode = document.SequenceNode
	MappingNode  = document.MappingNode
	AliasNode    = document.AliasNode
	DocumentNode = document.DocumentNode
)

// Style records the scalar/collection style a node was read in, or should
// be emitted in.
type Style = document.Style

const (
	AnyStyle          = document.AnyStyle
	TaggedStyle       = document.TaggedStyle
	DoubleQuotedStyle = document.DoubleQuotedStyle
	SingleQuotedStyle = document.SingleQuotedStyle
	LiteralStyle      = document.LiteralStyle
	FoldedStyle       = document.FoldedStyle
	FlowStyle         = document.FlowStyle
)

// Pair is a mapping key/value, returned by Node.Pairs for convenience.
type Pair = document.Pair

// Equal reports whether a and b are deeply equal, following aliases and
// guarding against cycles.
func Equal(a, b *Node) bool {
	return document.Equal(a, b)
}
