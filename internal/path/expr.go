package path

// exprKind is the tag of a compiled path-expression tree node (spec §4.8's
// expression tree: operand kinds plus chain/multi/logical/comparison/
// arithmetic/filter combinators).
type exprKind int8

const (
	exprRoot exprKind = iota
	exprThis
	exprParent
	exprEveryChild
	exprEveryRecurse
	exprAliasRef
	exprMapKey
	exprSeqIndex
	exprSeqSlice
	exprScalarLiteral

	exprChain   // Left then Right, threaded: Right evaluated against Left's result
	exprMulti   // Children, each cloned against the same input, results concatenated
	exprOr      // Left || Right, short-circuits on a non-empty Left
	exprAnd     // Left && Right, short-circuits on an empty Left
	exprCompare // Left Op Right, Op one of == != < <= > >=
	exprArith   // Left Op Right, Op one of + - * /

	exprFilterScalar     // $  suffix on Operand
	exprFilterCollection // %  suffix on Operand
	exprFilterSeq        // [] suffix on Operand
	exprFilterMap        // {} suffix on Operand
	exprFilterUnique     // !  suffix on Operand
)

// Expr is one node of a compiled path expression.
type Expr struct {
	Kind exprKind

	Key string // exprMapKey

	Index           int // exprSeqIndex, and exprSeqSlice's start when HasStart
	SliceEnd        int // exprSeqSlice's end when HasEnd
	HasStart        bool
	HasEnd          bool

	Literal interface{} // exprScalarLiteral: float64, string, or bool

	Op string // exprCompare / exprArith operator text

	Operand  *Expr   // exprFilter*
	Left     *Expr   // exprChain/exprOr/exprAnd/exprCompare/exprArith
	Right    *Expr
	Children []*Expr // exprMulti
}
