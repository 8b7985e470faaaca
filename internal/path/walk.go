// Package path implements the path-expression compiler and evaluator of
// spec §4.8/§4.9: a lexer/shunting-yard compiler that turns a path-query
// string into an expression tree, and an evaluator that walks a
// document.Document producing a Walk Result.
package path

import "github.com/libfyaml-go/fyaml/internal/document"

// ResultKind is the tag of a Walk Result union member.
type ResultKind int8

const (
	ResultEmpty ResultKind = iota
	ResultNode
	ResultScalar // a detached float64/string/bool scalar, from a literal, arithmetic or comparison
	ResultList
)

// Result is the evaluator's output unit (spec §3 "Walk result"): a
// node-reference, a scalar produced by an operator (not read from the
// document), or an ordered list of results. Node-refs and nested lists are
// what every-child/every-child-recursive/chain/multi produce; Scalar is
// only ever synthesized by a scalar literal, comparison or arithmetic.
type Result struct {
	Kind   ResultKind
	Node   *document.Node
	Scalar interface{} // float64, string, or bool
	List   []Result
}

func Empty() Result                      { return Result{Kind: ResultEmpty} }
func NodeResult(n *document.Node) Result  { return Result{Kind: ResultNode, Node: n} }
func ScalarResult(v interface{}) Result   { return Result{Kind: ResultScalar, Scalar: v} }
func ListResult(items []Result) Result    { return Result{Kind: ResultList, List: items} }

// IsEmpty reports whether r carries no content at all.
func (r Result) IsEmpty() bool {
	return r.Kind == ResultEmpty || (r.Kind == ResultList && len(r.List) == 0)
}

// Simplify flattens nested result lists and collapses a singleton list into
// its sole element, per spec §4.9's "the simplifier collapses nested refs
// of refs into a flat refs list, and a singleton refs list into its sole
// element".
func Simplify(r Result) Result {
	if r.Kind != ResultList {
		return r
	}
	flat := flatten(r.List)
	if len(flat) == 1 {
		return flat[0]
	}
	return ListResult(flat)
}

func flatten(items []Result) []Result {
	var out []Result
	for _, it := range items {
		if it.Kind == ResultList {
			out = append(out, flatten(it.List)...)
			continue
		}
		if it.IsEmpty() {
			continue
		}
		out = append(out, it)
	}
	return out
}

// asNodes returns every node-ref reachable from r, descending through lists.
func asNodes(r Result) []*document.Node {
	switch r.Kind {
	case ResultNode:
		return []*document.Node{r.Node}
	case ResultList:
		var out []*document.Node
		for _, it := range r.List {
			out = append(out, asNodes(it)...)
		}
		return out
	}
	return nil
}
