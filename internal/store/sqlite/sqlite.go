// Package sqlite is the embedded driver used by the local build target.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/store/sqldoc"
)

const schema = `CREATE TABLE IF NOT EXISTS %s (
    seq           INTEGER PRIMARY KEY AUTOINCREMENT,
    id            TEXT NOT NULL UNIQUE,
    title         TEXT NOT NULL,
    items         TEXT NOT NULL DEFAULT '[]',
    creation_time TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

var dialect = sqldoc.Dialect{
	Bind:     func(int) string { return "?" },
	ItemsIn:  func(bind string) string { return bind },
	ItemsOut: "items",
	LockRow:  "",
}

// Open opens (or creates) a SQLite database at the given path with WAL journaling.
// A single connection serialises writers, which also makes item mutations atomic.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the lists table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB, table string) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(schema, table))
	return err
}

// NewWithDB constructs a SQLite-backed store; each list is one JSON document row.
func NewWithDB(db *sql.DB, table string) *sqldoc.Store {
	return sqldoc.New(db, table, dialect)
}
