package formula

import (
	"testing"

	"github.com/cellgraph/spreadsheet/ast"
	"github.com/cellgraph/spreadsheet/position"
)

type zeroResolver struct{}

func (zeroResolver) Resolve(position.Position) ast.Value { return ast.NumberValue(0) }

func mustParse(t *testing.T, text string) ast.Node {
	t.Helper()
	node, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", text, err)
	}
	return node
}

func TestParseAndEvalBasicArithmetic(t *testing.T) {
	node := mustParse(t, "1+2*3")
	got := node.Eval(zeroResolver{})
	if got.IsError() || got.Number != 7 {
		t.Fatalf("Eval = %+v, want 7", got)
	}
}

func TestParsePrecedenceAndGrouping(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"-2+3", 1},
		{"-(2+3)", -5},
		{"10/2/5", 1},
		{"2*3+4*5", 26},
	}
	for _, c := range cases {
		node := mustParse(t, c.text)
		got := node.Eval(zeroResolver{})
		if got.IsError() || got.Number != c.want {
			t.Errorf("Eval(%q) = %+v, want %v", c.text, got, c.want)
		}
	}
}

func TestParseCellReference(t *testing.T) {
	node := mustParse(t, "A1+B2")
	refs := ast.ReferencedCells(node)
	if len(refs) != 2 {
		t.Fatalf("ReferencedCells = %v, want 2 entries", refs)
	}
	if refs[0] != position.New(0, 0) || refs[1] != position.New(1, 1) {
		t.Fatalf("ReferencedCells = %v, want [A1 B2]", refs)
	}
}

func TestParseOutOfRangeCellDefersToEval(t *testing.T) {
	// A syntactically valid but out-of-range cell reference must parse
	// successfully; only evaluation reports FormulaError::Ref.
	node, err := Parse("A99999999")
	if err != nil {
		t.Fatalf("Parse returned error for out-of-range (but well-formed) cell: %v", err)
	}
	refs := ast.ReferencedCells(node)
	if len(refs) != 1 || refs[0].Valid() {
		t.Fatalf("expected one out-of-range referenced position, got %v", refs)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "1+", "+", "()", "1 2", "A01+1", "1+*2", "(1+2"}
	for _, text := range cases {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", text)
		}
	}
}

func TestParseUnaryChain(t *testing.T) {
	node := mustParse(t, "--5")
	got := node.Eval(zeroResolver{})
	if got.IsError() || got.Number != 5 {
		t.Fatalf("Eval = %+v, want 5", got)
	}
}
