package yaml

import "github.com/libfyaml-go/fyaml/internal/path"

// PathExpr is a compiled path expression (spec §4.8), ready to be
// evaluated against one or more documents with EvalPath.
type PathExpr = path.Expr

// WalkResult is the path evaluator's output unit (spec §4.9): a single
// node-reference, a scalar synthesized by a comparison/arithmetic
// operator, or an ordered list of results.
type WalkResult = path.Result

// WalkResultKind tags which member of the WalkResult union is populated.
type WalkResultKind = path.ResultKind

const (
	WalkEmpty  = path.ResultEmpty
	WalkNode   = path.ResultNode
	WalkScalar = path.ResultScalar
	WalkList   = path.ResultList
)

// NodeResult wraps a single node as a WalkResult.
func NodeResult(n *Node) WalkResult { return path.NodeResult(n) }

// CompilePath compiles a path expression (spec §4.8) into a reusable
// PathExpr via the shunting-yard compiler.
func CompilePath(expr string) (*PathExpr, error) {
	return path.Compile(expr)
}

// EvalPath evaluates expr against doc, starting from start, and returns the
// simplified WalkResult (spec §4.9).
func EvalPath(expr *PathExpr, doc *Document, start WalkResult) (WalkResult, error) {
	return path.Eval(expr, doc, start)
}

// Query compiles expr and evaluates it against doc's root in one step.
func Query(doc *Document, expr string) (WalkResult, error) {
	return path.Query(doc, expr)
}
