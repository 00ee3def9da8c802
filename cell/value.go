package cell

import "github.com/cellgraph/spreadsheet/ast"

// ValueKind discriminates the displayed-value variant spec.md §3
// describes: empty-string placeholder, string (Text cells), number or
// FormulaError (Formula cells).
type ValueKind uint8

const (
	ValueEmpty ValueKind = iota
	ValueString
	ValueNumber
	ValueError
)

// Value is what GetValue returns: exactly one of the four kinds above
// is populated.
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
	Err    ast.FormulaError
}

// Display renders the value the way Sheet.PrintValues does: the empty
// string for Empty, the text verbatim for String, the shortest
// round-trip decimal for Number, and the fixed error token for Error.
func (v Value) Display() string {
	switch v.Kind {
	case ValueString:
		return v.Text
	case ValueNumber:
		return ast.FormatNumber(v.Number)
	case ValueError:
		return v.Err.String()
	default:
		return ""
	}
}
