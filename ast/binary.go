package ast

import "github.com/cellgraph/spreadsheet/position"

// BinaryOp is one of the four arithmetic binary operators the grammar
// in spec.md §1 allows.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
)

func (op BinaryOp) symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

func (op BinaryOp) precedence() int {
	if op == Mul || op == Div {
		return precMulDiv
	}
	return precAddSub
}

// BinaryNode is a binary arithmetic expression.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

// Eval evaluates both operands, then propagates the left operand's
// error ahead of the right's (spec.md §7: "propagate the left
// operand's error if both sides error"), and otherwise performs the
// arithmetic, turning division by exactly zero or a non-finite result
// into ErrArithmetic.
func (n *BinaryNode) Eval(r Resolver) Value {
	left := n.Left.Eval(r)
	right := n.Right.Eval(r)

	if left.IsError() {
		return left
	}
	if right.IsError() {
		return right
	}

	switch n.Op {
	case Add:
		return arithmeticResult(left.Number + right.Number)
	case Sub:
		return arithmeticResult(left.Number - right.Number)
	case Mul:
		return arithmeticResult(left.Number * right.Number)
	case Div:
		if right.Number == 0.0 {
			return ErrorValue(ErrArithmetic)
		}
		return arithmeticResult(left.Number / right.Number)
	default:
		return ErrorValue(ErrArithmetic)
	}
}

func (n *BinaryNode) collect(out map[position.Position]struct{}) {
	n.Left.collect(out)
	n.Right.collect(out)
}

func (n *BinaryNode) format(minPrec int) string {
	prec := n.Op.precedence()
	// the left operand groups at this node's own precedence (matches
	// left-associativity: (a-b)+c prints as "a-b+c"), the right
	// operand needs strictly higher precedence to print unparenthesized
	// (a-(b+c) must keep its parens).
	s := n.Left.format(prec) + n.Op.symbol() + n.Right.format(prec+1)
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}
