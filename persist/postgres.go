package persist

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/cellgraph/spreadsheet/sheet"
)

// PostgresStore is a networked Store backed by a single "cells" table
// (address text primary key, text the cell's raw editable content),
// grounded on broyeztony-karl's jackc/pgx/v5 dependency (SPEC_FULL.md
// §11.3). pgpassfile/pgservicefile/puddle are pulled in transitively
// by pgxpool and never imported directly here.
type PostgresStore struct {
	pool *pgxpool.Pool
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS cells (
	address TEXT PRIMARY KEY,
	text    TEXT NOT NULL
)`

// OpenPostgresStore connects to dsn and ensures the cells table exists.
func OpenPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "persist: connect postgres")
	}
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "persist: create cells table")
	}
	return &PostgresStore{pool: pool}, nil
}

func (p *PostgresStore) Save(s *sheet.Sheet) error {
	ctx := context.Background()
	cells, err := snapshot(s)
	if err != nil {
		return err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "persist: begin postgres transaction")
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE cells"); err != nil {
		return errors.Wrap(err, "persist: truncate cells")
	}
	for _, c := range cells {
		if _, err := tx.Exec(ctx, "INSERT INTO cells (address, text) VALUES ($1, $2)", c.Address, c.Text); err != nil {
			return errors.Wrapf(err, "persist: insert cell %s", c.Address)
		}
	}
	return errors.Wrap(tx.Commit(ctx), "persist: commit postgres transaction")
}

func (p *PostgresStore) Load() (*sheet.Sheet, error) {
	ctx := context.Background()
	rows, err := p.pool.Query(ctx, "SELECT address, text FROM cells ORDER BY address")
	if err != nil {
		return nil, errors.Wrap(err, "persist: query cells")
	}
	defer rows.Close()

	var cells []cellText
	for rows.Next() {
		var c cellText
		if err := rows.Scan(&c.Address, &c.Text); err != nil {
			return nil, errors.Wrap(err, "persist: scan cell row")
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "persist: iterate cell rows")
	}

	return restore(cells)
}

func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}
