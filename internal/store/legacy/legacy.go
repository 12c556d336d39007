// Copyright (c) 2026 psu Team
// psu - terminal password table
// This source code is licensed under the MIT license found in the LICENSE file.

// Package legacy reads entries from the SQLite database used by early psu
// releases, so they can be imported into the CSV store.
package legacy // import "github.com/psu-tools/psu/internal/store/legacy"

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/psu-tools/psu/internal/logging"
	"github.com/psu-tools/psu/internal/model"
	"github.com/psu-tools/psu/util/slicest"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// passwordRow maps the legacy `password` table.
type passwordRow struct {
	bun.BaseModel `bun:"table:password"`
	ID            int64  `bun:"id,pk,autoincrement"`
	Service       string `bun:"service,notnull"`
	Login         string `bun:"login,notnull"`
	Password      string `bun:"password,notnull"`
}

// DB is an open legacy database.
type DB struct {
	bun *bun.DB
}

// Open opens the SQLite file at path. The file must already exist; the
// driver would otherwise silently create an empty database.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("legacy database %s: %w", path, err)
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open legacy database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return &DB{bun: bun.NewDB(sqlDB, sqlitedialect.New())}, nil
}

// Entries returns every row of the password table ordered by id. The
// returned ids are positions, not the legacy primary keys.
func (d *DB) Entries(ctx context.Context) ([]model.Entry, error) {
	var rows []passwordRow
	if err := d.bun.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("could not read legacy passwords: %w", err)
	}
	entries := slicest.MapI(rows, func(i int, r passwordRow) model.Entry {
		return model.NewEntry(uint32(i), r.Service, r.Login, r.Password)
	})
	logging.Debugf("legacy: read %d rows", len(entries))
	return entries, nil
}

// Close releases the underlying connection.
func (d *DB) Close() error {
	return d.bun.Close()
}
