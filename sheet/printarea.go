package sheet

import "github.com/cellgraph/spreadsheet/position"

// printArea tracks the smallest origin-anchored rectangle covering
// every cell whose text is non-empty (spec.md §4.8), via per-row and
// per-column counts the way original_source/spreadsheet/sheet.cpp's
// MinPrintArea does with std::map<int,int>. Go has no ordered-map in
// the standard library (and none of the retrieval pack carries one),
// so the "current max" is cached and only rescanned when the count at
// that exact row/column drops to zero — O(1) for every Add and for
// the common Sub case, falling back to an O(n) rescan only when the
// bounding edge itself is vacated.
type printArea struct {
	rowCounts map[int]int
	colCounts map[int]int
	maxRow    int // highest row index with data; -1 means none
	maxCol    int
}

func newPrintArea() *printArea {
	return &printArea{
		rowCounts: make(map[int]int),
		colCounts: make(map[int]int),
		maxRow:    -1,
		maxCol:    -1,
	}
}

// Add records a transition from empty-text to non-empty-text at pos.
func (a *printArea) Add(pos position.Position) {
	a.rowCounts[pos.Row]++
	a.colCounts[pos.Col]++
	if pos.Row > a.maxRow {
		a.maxRow = pos.Row
	}
	if pos.Col > a.maxCol {
		a.maxCol = pos.Col
	}
}

// Sub records a transition from non-empty-text to empty-text at pos.
func (a *printArea) Sub(pos position.Position) {
	a.rowCounts[pos.Row]--
	if a.rowCounts[pos.Row] <= 0 {
		delete(a.rowCounts, pos.Row)
		if pos.Row == a.maxRow {
			a.maxRow = maxKey(a.rowCounts)
		}
	}

	a.colCounts[pos.Col]--
	if a.colCounts[pos.Col] <= 0 {
		delete(a.colCounts, pos.Col)
		if pos.Col == a.maxCol {
			a.maxCol = maxKey(a.colCounts)
		}
	}
}

// Size returns the current minimal print area.
func (a *printArea) Size() position.Size {
	if a.maxRow < 0 || a.maxCol < 0 {
		return position.Size{}
	}
	return position.Size{Rows: a.maxRow + 1, Cols: a.maxCol + 1}
}

func maxKey(m map[int]int) int {
	max := -1
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}
