package cell

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumeric reports whether text parses fully (no trailing
// garbage, no surrounding whitespace trimmed away silently) as a
// finite decimal, per spec.md §4.2's resolver rule for text cells
// used as a formula operand.
func ParseNumeric(text string) (float64, bool) {
	if text == "" || strings.TrimSpace(text) != text {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
