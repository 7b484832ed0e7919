package ast

import (
	"github.com/ravelang/ravec/report"
	"github.com/ravelang/ravec/types"
)

// BinOp enumerates the arithmetic operators BinaryExpr folds at compile
// time -- enough to evaluate an array length expression like `N * 2 + 1`.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
)

// BinaryExpr is an unreduced arithmetic expression over two operands, each
// of which may itself be unreduced. Comptime folds the whole tree down to a
// single literal, per the original spec's "count must reduce via the
// compile-time evaluator" rule for Array lengths.
type BinaryExpr struct {
	Base
	Op          BinOp
	Left, Right types.Node
}

func NewBinaryExpr(span *report.TextSpan, op BinOp, left, right types.Node) *BinaryExpr {
	return &BinaryExpr{Base: NewBaseOn(span), Op: op, Left: left, Right: right}
}

// Comptime reduces both operands and, if both fold to integers, applies Op
// and returns a fresh IntegerLiteral. Floating-point operands fold to a
// FloatLiteral instead. Anything else (eg. one side did not reduce to a
// literal at all) is a compile error -- this package has no surrounding
// expression context to blame, so it reports against the expression's own
// span.
func (e *BinaryExpr) Comptime() types.Node {
	l := e.Left.Comptime()
	r := e.Right.Comptime()

	if li, lok := l.(types.IntegerValuer); lok {
		if ri, rok := r.(types.IntegerValuer); rok {
			return NewIntegerLiteral(e.Span(), applyIntOp(e.Op, li.IntegerValue(), ri.IntegerValue()))
		}
	}

	if lf, lok := l.(types.FloatValuer); lok {
		if rf, rok := r.(types.FloatValuer); rok {
			return NewFloatLiteral(e.Span(), applyFloatOp(e.Op, lf.FloatValue(), rf.FloatValue()))
		}
	}

	report.CompileError(e.Span(), "expression does not reduce to a constant value")
	return e
}

func applyIntOp(op BinOp, a, b int64) int64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	default:
		report.ICE("applyIntOp: unknown BinOp %d", op)
		return 0
	}
}

func applyFloatOp(op BinOp, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Sub:
		return a - b
	case Mul:
		return a * b
	case Div:
		return a / b
	default:
		report.ICE("applyFloatOp: unknown BinOp %d", op)
		return 0
	}
}
