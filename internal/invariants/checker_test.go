package invariants

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/api"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/services"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store/memory"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store/sqlite"
)

func serve(t *testing.T, st store.Store) *InvariantChecker {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(services.NewGroceryListService(st), nil, zerolog.Nop()))
	t.Cleanup(srv.Close)
	return NewInvariantChecker(srv.URL)
}

func TestInvariants_MemoryStore(t *testing.T) {
	serve(t, memory.New()).RunAll(t)
}

func TestInvariants_SQLiteStore(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "grocery.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := sqlite.EnsureSchema(context.Background(), db, "grocery_lists"); err != nil {
		t.Fatalf("sqlite schema: %v", err)
	}
	serve(t, sqlite.NewWithDB(db, "grocery_lists")).RunAll(t)
}
