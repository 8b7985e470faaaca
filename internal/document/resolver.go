package document

import "fmt"

// Resolve performs the single alias-resolution pass of spec §4.6: every
// AliasNode's Alias field is set to its anchor's target, or a diagnostic is
// recorded (and an error returned) if the anchor is undefined.
//
// Tag-handle validation (an explicit tag's handle matching a %TAG
// directive) already happens in the parser, which only ever hands the
// builder fully-resolved tag URIs (spec §4.3); there is nothing left for
// this pass to check there.
func Resolve(doc *Document) error {
	return resolveWalk(doc, doc.Root, make(map[*Node]bool))
}

func resolveWalk(doc *Document, n *Node, visiting map[*Node]bool) error {
	if n == nil || visiting[n] {
		return nil
	}
	visiting[n] = true
	defer delete(visiting, n)

	switch n.Kind {
	case AliasNode:
		target, ok := doc.anchors[n.Value]
		if !ok {
			diag := &Diagnostic{
				Level:   LevelError,
				Module:  ModuleDoc,
				Message: fmt.Sprintf("unknown anchor '%s' referenced", n.Value),
				Line:    n.Line,
				Column:  n.Column,
			}
			doc.Diagnostics.Add(diag)
			return diag
		}
		n.Alias = target
		return nil
	case SequenceNode, MappingNode:
		for _, c := range n.Content {
			if err := resolveWalk(doc, c, visiting); err != nil {
				return err
			}
		}
	}
	return nil
}

// Equal compares two nodes for deep structural equality, following aliases
// to their resolved target and guarding against cycles with a visited-pair
// set, per spec §4.6's "a compare operation against a cyclic subgraph must
// terminate" requirement.
func Equal(a, b *Node) bool {
	return equalWalk(a, b, make(map[nodePair]bool))
}

type nodePair struct{ a, b *Node }

func equalWalk(a, b *Node, seen map[nodePair]bool) bool {
	a = deref(a)
	b = deref(b)
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	pair := nodePair{a, b}
	if seen[pair] {
		return true
	}
	seen[pair] = true

	if a.Kind != b.Kind || a.Tag != b.Tag {
		return false
	}
	switch a.Kind {
	case ScalarNode:
		return a.Value == b.Value
	case SequenceNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !equalWalk(a.Content[i], b.Content[i], seen) {
				return false
			}
		}
		return true
	case MappingNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !equalWalk(a.Content[i], b.Content[i], seen) {
				return false
			}
		}
		return true
	}
	return false
}

func deref(n *Node) *Node {
	for n != nil && n.Kind == AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
