// Package sqldoc keeps grocery lists in a SQL table with one row per list and the items
// sequence stored as a JSON array. It backs the postgres and sqlite drivers.
package sqldoc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
)

// Dialect captures the SQL differences between drivers.
type Dialect struct {
	// Bind returns the placeholder for the n-th (1-based) argument.
	Bind func(n int) string
	// ItemsIn wraps a bound JSON text argument for assignment to the items column.
	ItemsIn func(bind string) string
	// ItemsOut selects the items column as JSON text.
	ItemsOut string
	// LockRow is appended to the row read inside item mutations.
	LockRow string
}

// Store implements store.Store over a *sql.DB.
type Store struct {
	db      *sql.DB
	table   string
	dialect Dialect
}

// New wraps db; table must already exist (see the driver's EnsureSchema).
func New(db *sql.DB, table string, d Dialect) *Store {
	return &Store{db: db, table: table, dialect: d}
}

func (s *Store) Lists() store.GroceryLists { return s }

// HealthPing implements health.HealthPinger.
func (s *Store) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// Close closes the connection pool.
func (s *Store) Close() error { return s.db.Close() }

func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", model.ErrInvalidIdentifier
	}
	return u.String(), nil
}

func storageErr(op string, err error) error {
	return model.NewStorageError(op, pkgerrors.WithStack(err))
}

func encodeItems(items []model.GroceryItem) (string, error) {
	b, err := json.Marshal(model.CloneItems(items))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeItems(raw string) ([]model.GroceryItem, error) {
	var items []model.GroceryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	return model.CloneItems(items), nil
}

func (s *Store) b(n int) string { return s.dialect.Bind(n) }

func (s *Store) Create(ctx context.Context, l *model.GroceryList) (string, error) {
	raw, err := encodeItems(l.Items)
	if err != nil {
		return "", storageErr("insert", err)
	}
	id := uuid.NewString()
	q := fmt.Sprintf(`INSERT INTO %s (id, title, items) VALUES (%s, %s, %s)`,
		s.table, s.b(1), s.b(2), s.dialect.ItemsIn(s.b(3)))
	if _, err := s.db.ExecContext(ctx, q, id, l.Title, raw); err != nil {
		return "", storageErr("insert", err)
	}
	return id, nil
}

func (s *Store) List(ctx context.Context) ([]*model.GroceryList, error) {
	q := fmt.Sprintf(`SELECT id, title, %s FROM %s ORDER BY seq`, s.dialect.ItemsOut, s.table)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storageErr("select", err)
	}
	defer func() { _ = rows.Close() }()

	out := []*model.GroceryList{}
	for rows.Next() {
		var l model.GroceryList
		var raw string
		if err := rows.Scan(&l.ID, &l.Title, &raw); err != nil {
			return nil, storageErr("select", err)
		}
		if l.Items, err = decodeItems(raw); err != nil {
			return nil, storageErr("decode", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select", err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*model.GroceryList, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT title, %s FROM %s WHERE id = %s`, s.dialect.ItemsOut, s.table, s.b(1))
	l := model.GroceryList{ID: key}
	var raw string
	if err := s.db.QueryRowContext(ctx, q, key).Scan(&l.Title, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, storageErr("select", err)
	}
	if l.Items, err = decodeItems(raw); err != nil {
		return nil, storageErr("decode", err)
	}
	return &l, nil
}

// exec runs a single-row statement; zero affected rows is ErrNotFound.
func (s *Store) exec(ctx context.Context, op, q string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return storageErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (s *Store) Replace(ctx context.Context, id, title string, items []model.GroceryItem) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	raw, err := encodeItems(items)
	if err != nil {
		return storageErr("replace", err)
	}
	q := fmt.Sprintf(`UPDATE %s SET title = %s, items = %s WHERE id = %s`,
		s.table, s.b(1), s.dialect.ItemsIn(s.b(2)), s.b(3))
	return s.exec(ctx, "replace", q, title, raw, key)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return s.exec(ctx, "delete", fmt.Sprintf(`DELETE FROM %s WHERE id = %s`, s.table, s.b(1)), key)
}

// mutateItems reads the items of one row, applies f and writes the result back in one
// transaction. f returning an error aborts without writing.
func (s *Store) mutateItems(ctx context.Context, op, id string, f func([]model.GroceryItem) ([]model.GroceryItem, error)) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return storageErr(op, err)
	}
	defer func() { _ = tx.Rollback() }()

	var raw string
	sel := fmt.Sprintf(`SELECT %s FROM %s WHERE id = %s%s`, s.dialect.ItemsOut, s.table, s.b(1), s.dialect.LockRow)
	if err := tx.QueryRowContext(ctx, sel, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return storageErr(op, err)
	}
	items, err := decodeItems(raw)
	if err != nil {
		return storageErr(op, err)
	}
	if items, err = f(items); err != nil {
		return err
	}
	if raw, err = encodeItems(items); err != nil {
		return storageErr(op, err)
	}
	upd := fmt.Sprintf(`UPDATE %s SET items = %s WHERE id = %s`, s.table, s.dialect.ItemsIn(s.b(1)), s.b(2))
	if _, err := tx.ExecContext(ctx, upd, raw, key); err != nil {
		return storageErr(op, err)
	}
	if err := tx.Commit(); err != nil {
		return storageErr(op, err)
	}
	return nil
}

func (s *Store) PushItem(ctx context.Context, id string, item model.GroceryItem) error {
	return s.mutateItems(ctx, "push_item", id, func(items []model.GroceryItem) ([]model.GroceryItem, error) {
		return append(items, item), nil
	})
}

func (s *Store) SetItemPurchased(ctx context.Context, id, name string, purchased bool) error {
	return s.mutateItems(ctx, "set_purchased", id, func(items []model.GroceryItem) ([]model.GroceryItem, error) {
		if !model.SetPurchased(items, name, purchased) {
			return nil, model.ErrNotFound
		}
		return items, nil
	})
}

func (s *Store) PullItems(ctx context.Context, id, name string) error {
	return s.mutateItems(ctx, "pull_items", id, func(items []model.GroceryItem) ([]model.GroceryItem, error) {
		out, removed := model.RemoveItems(items, name)
		if removed == 0 {
			return nil, model.ErrNotFound
		}
		return out, nil
	})
}
