package regioncms

import (
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens a sqlite-backed bun handle for the DSN. The handle is
// restricted to a single connection so in-memory databases behave.
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("regioncms: open sqlite: %w", err)
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewPostgresDB wraps a host-provided postgres connection in a bun handle.
// The host owns the driver choice and the connection lifecycle.
func NewPostgresDB(sqlDB *sql.DB) *bun.DB {
	return bun.NewDB(sqlDB, pgdialect.New())
}
