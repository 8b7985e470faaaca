package path

import (
	"fmt"
	"strconv"

	"github.com/libfyaml-go/fyaml/internal/document"
)

// Eval walks doc starting from "start" (ordinarily NodeResult(doc.Root))
// and executes expr against it, implementing spec §4.9's evaluation rules.
// The result is passed through Simplify before being returned, matching the
// "simplifier flattens nested refs-of-refs, and a singleton list collapses
// to its sole element" rule that spec §4.9 applies to every combinator's
// output.
func Eval(expr *Expr, doc *document.Document, start Result) (Result, error) {
	r, err := eval(expr, doc, start)
	if err != nil {
		return Result{}, err
	}
	return Simplify(r), nil
}

func eval(e *Expr, doc *document.Document, in Result) (Result, error) {
	switch e.Kind {
	case exprRoot:
		return NodeResult(doc.Root), nil

	case exprThis:
		return in, nil

	case exprParent:
		var out []Result
		for _, n := range asNodes(in) {
			if n.Parent != nil {
				out = append(out, NodeResult(n.Parent))
			}
		}
		return ListResult(out), nil

	case exprEveryChild:
		var out []Result
		for _, n := range asNodes(in) {
			out = append(out, directChildren(n)...)
		}
		return ListResult(out), nil

	case exprEveryRecurse:
		var out []Result
		for _, n := range asNodes(in) {
			collectDescendants(n, &out)
		}
		return ListResult(out), nil

	case exprAliasRef:
		n, ok := doc.Anchor(e.Key)
		if !ok {
			return Empty(), fmt.Errorf("path: undefined anchor %q", e.Key)
		}
		return NodeResult(n), nil

	case exprMapKey:
		var out []Result
		for _, n := range asNodes(in) {
			if n.Kind != document.MappingNode {
				continue
			}
			for _, p := range n.Pairs() {
				if p.Key != nil && p.Key.Value == e.Key {
					out = append(out, NodeResult(p.Value))
				}
			}
		}
		return ListResult(out), nil

	case exprSeqIndex:
		var out []Result
		for _, n := range asNodes(in) {
			if n.Kind != document.SequenceNode {
				continue
			}
			idx := e.Index
			if idx < 0 {
				idx += len(n.Content)
			}
			if idx < 0 || idx >= len(n.Content) {
				continue
			}
			out = append(out, NodeResult(n.Content[idx]))
		}
		return ListResult(out), nil

	case exprSeqSlice:
		var out []Result
		for _, n := range asNodes(in) {
			if n.Kind != document.SequenceNode {
				continue
			}
			length := len(n.Content)
			start, end := 0, length
			if e.HasStart {
				start = clampIndex(e.Index, length)
			}
			if e.HasEnd {
				end = clampIndex(e.SliceEnd, length)
			}
			if start > end {
				start = end
			}
			for _, c := range n.Content[start:end] {
				out = append(out, NodeResult(c))
			}
		}
		return ListResult(out), nil

	case exprScalarLiteral:
		return ScalarResult(e.Literal), nil

	case exprChain:
		left, err := eval(e.Left, doc, in)
		if err != nil {
			return Result{}, err
		}
		return eval(e.Right, doc, Simplify(left))

	case exprMulti:
		var out []Result
		for _, child := range e.Children {
			r, err := eval(child, doc, in)
			if err != nil {
				return Result{}, err
			}
			out = append(out, r)
		}
		return ListResult(out), nil

	case exprOr:
		left, err := eval(e.Left, doc, in)
		if err != nil {
			return Result{}, err
		}
		if !Simplify(left).IsEmpty() {
			return left, nil
		}
		return eval(e.Right, doc, in)

	case exprAnd:
		left, err := eval(e.Left, doc, in)
		if err != nil {
			return Result{}, err
		}
		if Simplify(left).IsEmpty() {
			return left, nil
		}
		return eval(e.Right, doc, in)

	case exprCompare:
		return evalCompare(e, doc, in)

	case exprArith:
		return evalArith(e, doc, in)

	case exprFilterScalar:
		return filterKind(e, doc, in, document.ScalarNode)

	case exprFilterSeq:
		return filterKind(e, doc, in, document.SequenceNode)

	case exprFilterMap:
		return filterKind(e, doc, in, document.MappingNode)

	case exprFilterCollection:
		operand, err := eval(e.Operand, doc, in)
		if err != nil {
			return Result{}, err
		}
		var out []Result
		for _, n := range asNodes(operand) {
			if n.Kind == document.SequenceNode || n.Kind == document.MappingNode {
				out = append(out, NodeResult(n))
			}
		}
		return ListResult(out), nil

	case exprFilterUnique:
		operand, err := eval(e.Operand, doc, in)
		if err != nil {
			return Result{}, err
		}
		return dedupe(operand), nil
	}
	return Result{}, fmt.Errorf("path: unhandled expression kind %v", e.Kind)
}

func clampIndex(idx, length int) int {
	if idx < 0 {
		idx += length
	}
	if idx < 0 {
		return 0
	}
	if idx > length {
		return length
	}
	return idx
}

func directChildren(n *document.Node) []Result {
	switch n.Kind {
	case document.SequenceNode:
		out := make([]Result, 0, len(n.Content))
		for _, c := range n.Content {
			out = append(out, NodeResult(c))
		}
		return out
	case document.MappingNode:
		var out []Result
		for _, p := range n.Pairs() {
			out = append(out, NodeResult(p.Value))
		}
		return out
	}
	return nil
}

// collectDescendants appends n and every node reachable from it (mapping
// values, sequence elements, recursively) to out, implementing the
// every-child-recursive "**" operator.
func collectDescendants(n *document.Node, out *[]Result) {
	*out = append(*out, NodeResult(n))
	for _, child := range directChildren(n) {
		collectDescendants(child.Node, out)
	}
}

func filterKind(e *Expr, doc *document.Document, in Result, kind document.Kind) (Result, error) {
	operand, err := eval(e.Operand, doc, in)
	if err != nil {
		return Result{}, err
	}
	var out []Result
	for _, n := range asNodes(operand) {
		if n.Kind == kind {
			out = append(out, NodeResult(n))
		}
	}
	return ListResult(out), nil
}

// dedupe removes later duplicates from a result list by document.Equal,
// keeping the first occurrence of each distinct value (spec §4.9's
// filter-unique).
func dedupe(r Result) Result {
	nodes := asNodes(r)
	if len(nodes) == 0 {
		return r
	}
	var kept []*document.Node
	for _, n := range nodes {
		dup := false
		for _, k := range kept {
			if document.Equal(n, k) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, n)
		}
	}
	out := make([]Result, len(kept))
	for i, n := range kept {
		out[i] = NodeResult(n)
	}
	return ListResult(out)
}

// scalarValue lifts a Result down to a Go value suitable for comparison or
// arithmetic: a node-ref contributes its decoded scalar text (parsed as a
// float64 when it looks numeric), a Result already holding a literal
// contributes that literal directly.
func scalarValue(r Result) (interface{}, error) {
	switch r.Kind {
	case ResultScalar:
		return r.Scalar, nil
	case ResultNode:
		if r.Node.Kind != document.ScalarNode {
			return nil, fmt.Errorf("path: cannot use a %s node as a scalar operand", r.Node.Kind)
		}
		if f, err := strconv.ParseFloat(r.Node.Value, 64); err == nil {
			return f, nil
		}
		return r.Node.Value, nil
	case ResultList:
		if len(r.List) == 1 {
			return scalarValue(r.List[0])
		}
	}
	return nil, fmt.Errorf("path: expected a single scalar operand")
}

func evalCompare(e *Expr, doc *document.Document, in Result) (Result, error) {
	leftR, err := eval(e.Left, doc, in)
	if err != nil {
		return Result{}, err
	}
	rightR, err := eval(e.Right, doc, in)
	if err != nil {
		return Result{}, err
	}
	left, err := scalarValue(Simplify(leftR))
	if err != nil {
		return Result{}, err
	}
	right, err := scalarValue(Simplify(rightR))
	if err != nil {
		return Result{}, err
	}

	lf, lIsNum := left.(float64)
	rf, rIsNum := right.(float64)
	var cmp int
	if lIsNum && rIsNum {
		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		}
	} else {
		ls, rs := fmt.Sprint(left), fmt.Sprint(right)
		switch {
		case ls < rs:
			cmp = -1
		case ls > rs:
			cmp = 1
		}
	}

	var result bool
	switch e.Op {
	case "==":
		result = cmp == 0
	case "!=":
		result = cmp != 0
	case "<":
		result = cmp < 0
	case "<=":
		result = cmp <= 0
	case ">":
		result = cmp > 0
	case ">=":
		result = cmp >= 0
	default:
		return Result{}, fmt.Errorf("path: unknown comparison operator %q", e.Op)
	}
	return ScalarResult(result), nil
}

func evalArith(e *Expr, doc *document.Document, in Result) (Result, error) {
	leftR, err := eval(e.Left, doc, in)
	if err != nil {
		return Result{}, err
	}
	rightR, err := eval(e.Right, doc, in)
	if err != nil {
		return Result{}, err
	}
	left, err := scalarValue(Simplify(leftR))
	if err != nil {
		return Result{}, err
	}
	right, err := scalarValue(Simplify(rightR))
	if err != nil {
		return Result{}, err
	}

	if e.Op == "+" {
		ls, lIsStr := left.(string)
		rs, rIsStr := right.(string)
		if lIsStr || rIsStr {
			if !lIsStr {
				ls = fmt.Sprint(left)
			}
			if !rIsStr {
				rs = fmt.Sprint(right)
			}
			return ScalarResult(ls + rs), nil
		}
	}

	lf, lok := left.(float64)
	rf, rok := right.(float64)
	if !lok || !rok {
		return Result{}, fmt.Errorf("path: arithmetic operator %q requires numeric operands", e.Op)
	}
	switch e.Op {
	case "+":
		return ScalarResult(lf + rf), nil
	case "-":
		return ScalarResult(lf - rf), nil
	case "*":
		return ScalarResult(lf * rf), nil
	case "/":
		if rf == 0 {
			return Result{}, fmt.Errorf("path: division by zero")
		}
		return ScalarResult(lf / rf), nil
	}
	return Result{}, fmt.Errorf("path: unknown arithmetic operator %q", e.Op)
}
