// Package persist snapshots a *sheet.Sheet to and from durable
// storage. Per spec.md §1 ("persistence is an external collaborator,
// not part of the core"), a snapshot is just every populated
// position's GetText: replaying Sheet.SetCell for each one on load
// reconstructs formulas, the dependency graph, and caches identically,
// so neither backend needs to know about the AST at all.
package persist

import (
	"github.com/cellgraph/spreadsheet/position"
	"github.com/cellgraph/spreadsheet/sheet"
)

// Store is implemented by bbolt.go (embedded, single file) and
// postgres.go (networked), selected by cmd/cellsheetd's configuration.
type Store interface {
	// Save persists every populated cell's text.
	Save(s *sheet.Sheet) error
	// Load reconstructs a sheet from the last Save. A Store that has
	// never been saved to returns a fresh, empty sheet, not an error.
	Load() (*sheet.Sheet, error)
	// Close releases the backend's underlying connection/file handle.
	Close() error
}

// snapshot walks a sheet's printable area and returns the non-empty
// (address, text) pairs both backends serialize identically.
func snapshot(s *sheet.Sheet) ([]cellText, error) {
	size := s.GetPrintableSize()
	var out []cellText
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			addr := position.New(row, col).String()
			text, err := s.GetCellText(addr)
			if err != nil {
				return nil, err
			}
			if text == "" {
				continue
			}
			out = append(out, cellText{Address: addr, Text: text})
		}
	}
	return out, nil
}

// restore replays SetCell for every stored (address, text) pair onto
// a fresh sheet. Cells are applied in the order the backend returns
// them (sorted by address text, not by row and column); the order does
// not matter, since a formula applied before the cell it reads still
// applies cleanly: SetCell materializes referenced positions as Empty
// on first sight and invalidates the formula when that cell is set.
func restore(cells []cellText) (*sheet.Sheet, error) {
	s := sheet.New()
	for _, c := range cells {
		if err := s.SetCell(c.Address, c.Text); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type cellText struct {
	Address string `json:"address"`
	Text    string `json:"text"`
}
