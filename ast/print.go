package ast

import "strconv"

// FormatNumber renders a double the way vogtb-go-spreadsheet's
// NumberNode.ToString does: integral values print without a decimal
// point, everything else uses the shortest round-trip representation.
// Used both for canonical formula printing and for Sheet.PrintValues.
func FormatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
