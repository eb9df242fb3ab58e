package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store/sqldoc"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store/storetest"
)

func makeSQLiteStore(t *testing.T) *sqldoc.Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "grocery.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := EnsureSchema(context.Background(), db, "grocery_lists"); err != nil {
		t.Fatalf("schema: %v", err)
	}
	s := NewWithDB(db, "grocery_lists")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_Compliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store { return makeSQLiteStore(t) })
}

func TestSQLiteStore_EnsureSchemaIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "grocery.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	for i := 0; i < 2; i++ {
		if err := EnsureSchema(context.Background(), db, "grocery_lists"); err != nil {
			t.Fatalf("EnsureSchema #%d: %v", i+1, err)
		}
	}
}

func TestSQLiteStore_ListKeepsCreationOrder(t *testing.T) {
	s := makeSQLiteStore(t)
	ctx := context.Background()
	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		id, err := s.Create(ctx, &model.GroceryList{Title: title})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, id)
	}
	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(all))
	}
	for i := range ids {
		if all[i].ID != ids[i] {
			t.Fatalf("order mismatch at %d: %s != %s", i, all[i].ID, ids[i])
		}
	}
}

func TestSQLiteStore_ConcurrentPushKeepsEveryItem(t *testing.T) {
	s := makeSQLiteStore(t)
	ctx := context.Background()
	id, err := s.Create(ctx, &model.GroceryList{Title: "party"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- s.PushItem(ctx, id, model.GroceryItem{Name: "chips", Quantity: n})
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("PushItem: %v", err)
		}
	}

	got, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Items) != 20 {
		t.Fatalf("expected 20 items, got %d", len(got.Items))
	}
}
