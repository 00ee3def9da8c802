// Package export provides a one-way analytics dump of a sheet into
// DuckDB, grounded on OmniMCP-AI-excelize/duckdb's engine.go
// (database/sql + the blank-imported marcboeker/go-duckdb driver) and
// its calc_duckdb_test.go precedent of feeding spreadsheet values into
// DuckDB for analysis (SPEC_FULL.md §11.4). This is not a Store: it
// never reads DuckDB back into a sheet, and the cells table it writes
// carries the evaluated value alongside the text, not just the text
// persist.Store round-trips.
package export

import (
	"database/sql"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	"github.com/cellgraph/spreadsheet/position"
	"github.com/cellgraph/spreadsheet/sheet"
)

const createTableSQL = `CREATE TABLE IF NOT EXISTS cells (
	row   INTEGER NOT NULL,
	col   INTEGER NOT NULL,
	text  VARCHAR NOT NULL,
	value VARCHAR NOT NULL
)`

// DumpValues opens a DuckDB database at dsn (a file path, or "" for
// an in-memory database) and bulk-inserts every printable-area cell's
// (row, col, text, value) tuple into a fresh "cells" table.
func DumpValues(s *sheet.Sheet, dsn string) error {
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return errors.Wrap(err, "export: open duckdb")
	}
	defer db.Close()

	if _, err := db.Exec(createTableSQL); err != nil {
		return errors.Wrap(err, "export: create cells table")
	}
	if _, err := db.Exec("DELETE FROM cells"); err != nil {
		return errors.Wrap(err, "export: clear cells table")
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "export: begin transaction")
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO cells (row, col, text, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "export: prepare insert")
	}
	defer stmt.Close()

	size := s.GetPrintableSize()
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			pos := position.New(row, col)
			addr := pos.String()

			text, err := s.GetCellText(addr)
			if err != nil {
				return errors.Wrapf(err, "export: get text %s", addr)
			}
			if text == "" {
				continue
			}

			value, err := s.GetCell(addr)
			if err != nil {
				return errors.Wrapf(err, "export: get value %s", addr)
			}

			if _, err := stmt.Exec(row, col, text, value.Display()); err != nil {
				return errors.Wrapf(err, "export: insert %s", addr)
			}
		}
	}

	return errors.Wrap(tx.Commit(), "export: commit transaction")
}
