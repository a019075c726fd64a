// Package database provides database connection management.
package database

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/simonggx/remword/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Open opens a SQLite connection using the provided config and applies the schema.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	db, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	// SQLite serializes writers. A single connection keeps in-memory
	// databases on one logical store as well.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("db.Exec(PRAGMA journal_mode) > %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return nil, fmt.Errorf("db.Exec(PRAGMA foreign_keys) > %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("database.Migrate() > %w", err)
	}

	return db, nil
}

// Migrate applies the embedded schema. Statements use IF NOT EXISTS so the
// call is safe on every open.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("db.Exec(schema) > %w", err)
	}
	return nil
}
