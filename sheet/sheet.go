// Package sheet ties the formula engine's components together into the
// single addressable grid spec.md §3/§4.7 describes: cell storage, the
// dependency graph, and the print-area tracker, plus the Resolver
// dispatch a formula's evaluation needs.
//
// The public surface mirrors vogtb-go-spreadsheet's Spreadsheet type
// (sheet.go) and the SpreadsheetInterface it implements (sheet.go's
// Get/Set/Remove taking an address string), generalized to the
// narrower single-sheet, arithmetic-only model this spec requires (no
// worksheet ID, no named ranges).
package sheet

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/cellgraph/spreadsheet/ast"
	"github.com/cellgraph/spreadsheet/cell"
	"github.com/cellgraph/spreadsheet/graph"
	"github.com/cellgraph/spreadsheet/position"
)

// Sheet is a single two-dimensional grid of cells. The zero value is
// not usable; use New.
type Sheet struct {
	cells map[position.Position]*cell.Cell
	deps  *graph.Graph
	area  *printArea
}

// New creates an empty sheet.
func New() *Sheet {
	return &Sheet{
		cells: make(map[position.Position]*cell.Cell),
		deps:  graph.New(),
		area:  newPrintArea(),
	}
}

// SetCell parses address and replaces the cell there with the one text
// builds (spec.md §4.7's SetCellContent). If text is a formula whose
// references would close a cycle, the sheet is left completely
// unchanged and ErrCircularDependency is returned (spec.md §4.5/§7).
// A malformed address, or a malformed formula, likewise leaves the
// sheet unchanged.
func (s *Sheet) SetCell(address, text string) error {
	pos, err := position.Parse(address)
	if err != nil {
		return errors.Wrapf(ErrInvalidPosition, "sheet: set %q", address)
	}

	next, err := cell.Build(text)
	if err != nil {
		return errors.Wrapf(err, "sheet: set %s", pos)
	}

	refs := next.ReferencedCells()
	if len(refs) > 0 && s.deps.WouldCycle(pos, refs) {
		return errors.Wrapf(ErrCircularDependency, "sheet: set %s", pos)
	}

	prevText := s.textAt(pos)

	for _, ref := range refs {
		if _, ok := s.cells[ref]; !ok {
			s.cells[ref] = cell.Empty()
		}
	}

	s.cells[pos] = next
	s.deps.SetOut(pos, refs)

	for _, dependent := range s.deps.TransitiveIn(pos) {
		if c, ok := s.cells[dependent]; ok {
			c.ClearCache()
		}
	}

	s.updatePrintArea(pos, prevText != "", next.Text() != "")

	return nil
}

// GetCell returns the displayed value at address (spec.md §4.7's
// GetCellValue), "" / Empty if the position has never been written.
func (s *Sheet) GetCell(address string) (cell.Value, error) {
	pos, err := position.Parse(address)
	if err != nil {
		return cell.Value{}, errors.Wrapf(ErrInvalidPosition, "sheet: get %q", address)
	}
	return s.valueAt(pos), nil
}

// GetCellText returns the raw editable text at address (spec.md
// §4.7's GetCellText): the original input for Text cells (escape
// sigil intact) and the canonical "=..." form for Formula cells.
func (s *Sheet) GetCellText(address string) (string, error) {
	pos, err := position.Parse(address)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidPosition, "sheet: get text %q", address)
	}
	if c, ok := s.cells[pos]; ok {
		return c.Text(), nil
	}
	return "", nil
}

// ClearCell resets address to Empty, equivalent to SetCell(address, "").
func (s *Sheet) ClearCell(address string) error {
	return s.SetCell(address, "")
}

// GetPrintableSize returns the smallest origin-anchored rectangle
// covering every cell with non-empty text (spec.md §4.8).
func (s *Sheet) GetPrintableSize() position.Size {
	return s.area.Size()
}

// PrintValues writes the printable area's displayed values as a
// tab-separated grid, one row per line (spec.md §6).
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.print(w, func(pos position.Position) string {
		return s.valueAt(pos).Display()
	})
}

// PrintTexts writes the printable area's raw editable text as a
// tab-separated grid, one row per line (spec.md §6).
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.print(w, func(pos position.Position) string {
		if c, ok := s.cells[pos]; ok {
			return c.Text()
		}
		return ""
	})
}

func (s *Sheet) print(w io.Writer, cellText func(position.Position) string) error {
	size := s.GetPrintableSize()
	var b strings.Builder
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(cellText(position.New(row, col)))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (s *Sheet) valueAt(pos position.Position) cell.Value {
	c, ok := s.cells[pos]
	if !ok {
		return cell.Value{Kind: cell.ValueEmpty}
	}
	return c.Value(resolver{s})
}

func (s *Sheet) textAt(pos position.Position) string {
	c, ok := s.cells[pos]
	if !ok {
		return ""
	}
	return c.Text()
}

func (s *Sheet) updatePrintArea(pos position.Position, wasNonEmpty, isNonEmpty bool) {
	switch {
	case !wasNonEmpty && isNonEmpty:
		s.area.Add(pos)
	case wasNonEmpty && !isNonEmpty:
		s.area.Sub(pos)
	}
}

// resolver adapts Sheet to ast.Resolver, implementing spec.md §4.2's
// formula-operand dispatch: empty cell resolves to 0, a text cell
// resolves to its parsed number or ast.ErrValue, a formula cell
// resolves to its own (possibly cached) value or propagates its
// error, and a position failing Valid resolves to ast.ErrRef.
type resolver struct {
	s *Sheet
}

func (r resolver) Resolve(pos position.Position) ast.Value {
	if !pos.Valid() {
		return ast.ErrorValue(ast.ErrRef)
	}
	c, ok := r.s.cells[pos]
	if !ok {
		return ast.NumberValue(0)
	}
	switch c.Kind() {
	case cell.KindEmpty:
		return ast.NumberValue(0)
	case cell.KindText:
		n, ok := cell.ParseNumeric(c.DisplayText())
		if !ok {
			return ast.ErrorValue(ast.ErrValue)
		}
		return ast.NumberValue(n)
	case cell.KindFormula:
		v := c.Value(r)
		if v.Kind == cell.ValueError {
			return ast.ErrorValue(v.Err)
		}
		return ast.NumberValue(v.Number)
	default:
		return ast.NumberValue(0)
	}
}
