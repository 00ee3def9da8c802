package ast

import (
	"testing"

	"github.com/cellgraph/spreadsheet/position"
)

type mapResolver map[position.Position]Value

func (m mapResolver) Resolve(p position.Position) Value {
	if v, ok := m[p]; ok {
		return v
	}
	return NumberValue(0)
}

func num(v float64) *NumNode { return &NumNode{Value: v} }

func TestEvalBasicArithmetic(t *testing.T) {
	// 1+2*3
	tree := &BinaryNode{
		Op:   Add,
		Left: num(1),
		Right: &BinaryNode{
			Op:    Mul,
			Left:  num(2),
			Right: num(3),
		},
	}
	got := tree.Eval(mapResolver{})
	if got.IsError() || got.Number != 7 {
		t.Fatalf("Eval = %+v, want 7", got)
	}
	if text := Print(tree); text != "1+2*3" {
		t.Errorf("Print = %q, want %q", text, "1+2*3")
	}
}

func TestPrintParenthesization(t *testing.T) {
	a, b, c := num(1), num(2), num(3)

	// a-(b+c) must keep its parens.
	needsParens := &BinaryNode{Op: Sub, Left: a, Right: &BinaryNode{Op: Add, Left: b, Right: c}}
	if got := Print(needsParens); got != "1-(2+3)" {
		t.Errorf("Print = %q, want %q", got, "1-(2+3)")
	}

	// (a-b)+c does not need parens.
	noParens := &BinaryNode{Op: Add, Left: &BinaryNode{Op: Sub, Left: a, Right: b}, Right: c}
	if got := Print(noParens); got != "1-2+3" {
		t.Errorf("Print = %q, want %q", got, "1-2+3")
	}
}

func TestUnaryPrecedence(t *testing.T) {
	// -(1+2) must keep parens; chained unary does not need them.
	tree := &UnaryNode{Sign: Minus, Operand: &BinaryNode{Op: Add, Left: num(1), Right: num(2)}}
	if got := Print(tree); got != "-(1+2)" {
		t.Errorf("Print = %q, want %q", got, "-(1+2)")
	}

	chained := &UnaryNode{Sign: Minus, Operand: &UnaryNode{Sign: Minus, Operand: num(5)}}
	if got := Print(chained); got != "--5" {
		t.Errorf("Print = %q, want %q", got, "--5")
	}
	got := chained.Eval(mapResolver{})
	if got.IsError() || got.Number != 5 {
		t.Fatalf("Eval = %+v, want 5", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	tree := &BinaryNode{Op: Div, Left: num(1), Right: num(0)}
	got := tree.Eval(mapResolver{})
	if got.Err != ErrArithmetic {
		t.Fatalf("Eval = %+v, want ErrArithmetic", got)
	}
}

func TestErrorPropagationPrefersLeft(t *testing.T) {
	leftErr := &CellNode{Pos: position.New(0, 0)}
	rightErr := &CellNode{Pos: position.New(0, 1)}
	resolver := mapResolver{
		position.New(0, 0): ErrorValue(ErrValue),
		position.New(0, 1): ErrorValue(ErrRef),
	}
	tree := &BinaryNode{Op: Add, Left: leftErr, Right: rightErr}
	got := tree.Eval(resolver)
	if got.Err != ErrValue {
		t.Fatalf("Eval = %+v, want left's ErrValue", got)
	}
}

func TestReferencedCellsSortedUnique(t *testing.T) {
	a1 := position.New(0, 0)
	b2 := position.New(1, 1)
	tree := &BinaryNode{
		Op:   Add,
		Left: &CellNode{Pos: b2},
		Right: &BinaryNode{
			Op:    Add,
			Left:  &CellNode{Pos: a1},
			Right: &CellNode{Pos: b2},
		},
	}
	refs := ReferencedCells(tree)
	if len(refs) != 2 || refs[0] != a1 || refs[1] != b2 {
		t.Fatalf("ReferencedCells = %v, want [A1 B2] sorted and deduped", refs)
	}
}

func TestNonFiniteResultIsArithmeticError(t *testing.T) {
	huge := &NumNode{Value: 1e308}
	tree := &BinaryNode{Op: Mul, Left: huge, Right: huge}
	got := tree.Eval(mapResolver{})
	if got.Err != ErrArithmetic {
		t.Fatalf("Eval = %+v, want ErrArithmetic for overflow to +Inf", got)
	}
}
