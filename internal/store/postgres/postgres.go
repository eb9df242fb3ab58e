package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/store/sqldoc"
)

const schema = `CREATE TABLE IF NOT EXISTS %s (
    seq           BIGSERIAL,
    id            TEXT PRIMARY KEY,
    title         TEXT NOT NULL,
    items         JSONB NOT NULL DEFAULT '[]'::jsonb,
    creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var dialect = sqldoc.Dialect{
	Bind:     func(n int) string { return fmt.Sprintf("$%d", n) },
	ItemsIn:  func(bind string) string { return bind + "::jsonb" },
	ItemsOut: "items::text",
	LockRow:  " FOR UPDATE",
}

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
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

// NewWithDB constructs a Postgres-backed store; each list is one JSONB document row.
func NewWithDB(db *sql.DB, table string) *sqldoc.Store {
	return sqldoc.New(db, table, dialect)
}
