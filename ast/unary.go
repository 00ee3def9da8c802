package ast

import "github.com/cellgraph/spreadsheet/position"

// UnarySign distinguishes unary plus (identity) from unary minus (negation).
type UnarySign uint8

const (
	Plus UnarySign = iota
	Minus
)

// UnaryNode is a unary-signed expression, e.g. "-A1" or "+(1+2)".
type UnaryNode struct {
	Sign    UnarySign
	Operand Node
}

func (n *UnaryNode) Eval(r Resolver) Value {
	v := n.Operand.Eval(r)
	if v.IsError() || n.Sign == Plus {
		return v
	}
	return arithmeticResult(-v.Number)
}

func (n *UnaryNode) collect(out map[position.Position]struct{}) {
	n.Operand.collect(out)
}

func (n *UnaryNode) format(minPrec int) string {
	sign := "+"
	if n.Sign == Minus {
		sign = "-"
	}
	s := sign + n.Operand.format(precUnary)
	if precUnary < minPrec {
		return "(" + s + ")"
	}
	return s
}
