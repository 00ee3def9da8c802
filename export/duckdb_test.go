package export

import (
	"testing"

	"github.com/cellgraph/spreadsheet/sheet"
)

func TestDumpValuesWritesPrintableCells(t *testing.T) {
	s := sheet.New()
	if err := s.SetCell("A1", "10"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if err := s.SetCell("B1", "=A1*2"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}

	if err := DumpValues(s, ""); err != nil {
		t.Fatalf("DumpValues: %v", err)
	}
}

func TestDumpValuesOnEmptySheetCreatesEmptyTable(t *testing.T) {
	s := sheet.New()
	if err := DumpValues(s, ""); err != nil {
		t.Fatalf("DumpValues: %v", err)
	}
}
