package storetest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
)

// MalformedID is rejected by every driver's key format.
const MalformedID = "not/a-valid-id"

// Run exercises the compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store and return it from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	lists := s.Lists()
	ctx := context.Background()

	create := func(t *testing.T, title string, items ...model.GroceryItem) string {
		t.Helper()
		id, err := lists.Create(ctx, &model.GroceryList{Title: title, Items: items})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if id == "" {
			t.Fatalf("Create: empty id")
		}
		return id
	}
	get := func(t *testing.T, id string) *model.GroceryList {
		t.Helper()
		l, err := lists.Get(ctx, id)
		if err != nil || l == nil {
			t.Fatalf("Get(%s): got=%v err=%v", id, l, err)
		}
		return l
	}

	t.Run("create_get_roundtrip", func(t *testing.T) {
		items := []model.GroceryItem{{Name: "milk", Quantity: 2}, {Name: "eggs", Quantity: 12, Purchased: true}}
		id := create(t, "Weekly", items...)
		got := get(t, id)
		if got.ID != id || got.Title != "Weekly" || !reflect.DeepEqual(got.Items, items) {
			t.Fatalf("roundtrip mismatch: %+v", got)
		}
	})

	t.Run("create_empty_items", func(t *testing.T) {
		id := create(t, "Empty")
		got := get(t, id)
		if got.Items == nil || len(got.Items) != 0 {
			t.Fatalf("expected empty non-nil items, got %#v", got.Items)
		}
	})

	t.Run("ids_unique", func(t *testing.T) {
		a := create(t, "a")
		b := create(t, "b")
		if a == b {
			t.Fatalf("duplicate ids: %s", a)
		}
	})

	t.Run("list_all", func(t *testing.T) {
		id := create(t, "Listed", model.GroceryItem{Name: "tea", Quantity: 1})
		all, err := lists.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		found := false
		for _, l := range all {
			if l.ID == "" {
				t.Fatalf("List returned list without id: %+v", l)
			}
			if l.ID == id {
				found = l.Title == "Listed" && len(l.Items) == 1
			}
		}
		if !found {
			t.Fatalf("created list %s missing from List", id)
		}
	})

	// A deleted id is well-formed but absent.
	absent := create(t, "gone")
	if err := lists.Delete(ctx, absent); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	t.Run("absent_id_not_found", func(t *testing.T) {
		expectNotFound(t, "Get", func() error { _, err := lists.Get(ctx, absent); return err })
		expectNotFound(t, "Replace", func() error { return lists.Replace(ctx, absent, "x", nil) })
		expectNotFound(t, "Delete", func() error { return lists.Delete(ctx, absent) })
		expectNotFound(t, "PushItem", func() error { return lists.PushItem(ctx, absent, model.GroceryItem{Name: "x"}) })
		expectNotFound(t, "SetItemPurchased", func() error { return lists.SetItemPurchased(ctx, absent, "x", true) })
		expectNotFound(t, "PullItems", func() error { return lists.PullItems(ctx, absent, "x") })
	})

	t.Run("malformed_id", func(t *testing.T) {
		_, err := lists.Get(ctx, MalformedID)
		if !errors.Is(err, model.ErrInvalidIdentifier) {
			t.Fatalf("Get malformed: expected ErrInvalidIdentifier, got %v", err)
		}
		expectNotFound(t, "Replace", func() error { return lists.Replace(ctx, MalformedID, "x", nil) })
		expectNotFound(t, "Delete", func() error { return lists.Delete(ctx, MalformedID) })
		expectNotFound(t, "PushItem", func() error { return lists.PushItem(ctx, MalformedID, model.GroceryItem{Name: "x"}) })
		expectNotFound(t, "SetItemPurchased", func() error { return lists.SetItemPurchased(ctx, MalformedID, "x", true) })
		expectNotFound(t, "PullItems", func() error { return lists.PullItems(ctx, MalformedID, "x") })
	})

	t.Run("replace_overwrites_items", func(t *testing.T) {
		id := create(t, "Before")
		if err := lists.PushItem(ctx, id, model.GroceryItem{Name: "apples", Quantity: 3}); err != nil {
			t.Fatalf("PushItem: %v", err)
		}
		if err := lists.Replace(ctx, id, "After", []model.GroceryItem{}); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		got := get(t, id)
		if got.Title != "After" || len(got.Items) != 0 {
			t.Fatalf("replace did not overwrite: %+v", got)
		}
		if err := lists.Replace(ctx, id, "Again", []model.GroceryItem{{Name: "pears", Quantity: 1}}); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		got = get(t, id)
		if got.ID != id || got.Title != "Again" || len(got.Items) != 1 || got.Items[0].Name != "pears" {
			t.Fatalf("second replace mismatch: %+v", got)
		}
	})

	t.Run("push_item_appends", func(t *testing.T) {
		id := create(t, "Push", model.GroceryItem{Name: "milk", Quantity: 1})
		item := model.GroceryItem{Name: "milk", Quantity: 4, Purchased: true}
		if err := lists.PushItem(ctx, id, item); err != nil {
			t.Fatalf("PushItem: %v", err)
		}
		got := get(t, id)
		if len(got.Items) != 2 || got.Items[1] != item {
			t.Fatalf("push mismatch: %+v", got.Items)
		}
	})

	t.Run("set_item_purchased", func(t *testing.T) {
		id := create(t, "Weekly",
			model.GroceryItem{Name: "milk", Quantity: 2},
			model.GroceryItem{Name: "bread", Quantity: 1},
			model.GroceryItem{Name: "milk", Quantity: 5},
		)
		if err := lists.SetItemPurchased(ctx, id, "milk", true); err != nil {
			t.Fatalf("SetItemPurchased: %v", err)
		}
		want := []model.GroceryItem{
			{Name: "milk", Quantity: 2, Purchased: true},
			{Name: "bread", Quantity: 1},
			{Name: "milk", Quantity: 5},
		}
		if got := get(t, id); !reflect.DeepEqual(got.Items, want) {
			t.Fatalf("purchased update mismatch: %+v", got.Items)
		}
		expectNotFound(t, "SetItemPurchased missing item", func() error { return lists.SetItemPurchased(ctx, id, "caviar", true) })
	})

	t.Run("pull_items", func(t *testing.T) {
		id := create(t, "Pull",
			model.GroceryItem{Name: "milk", Quantity: 2},
			model.GroceryItem{Name: "bread", Quantity: 1},
			model.GroceryItem{Name: "milk", Quantity: 5},
		)
		expectNotFound(t, "PullItems missing item", func() error { return lists.PullItems(ctx, id, "caviar") })
		if got := get(t, id); got.ItemCount("milk") != 2 || len(got.Items) != 3 {
			t.Fatalf("list changed after failed pull: %+v", got.Items)
		}
		if err := lists.PullItems(ctx, id, "milk"); err != nil {
			t.Fatalf("PullItems: %v", err)
		}
		got := get(t, id)
		if got.ItemCount("milk") != 0 || got.ItemCount("bread") != 1 || len(got.Items) != 1 {
			t.Fatalf("pull mismatch: %+v", got.Items)
		}
	})

	t.Run("delete", func(t *testing.T) {
		id := create(t, "Delete me")
		if err := lists.Delete(ctx, id); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		expectNotFound(t, "Get after delete", func() error { _, err := lists.Get(ctx, id); return err })
	})
}

func expectNotFound(t *testing.T, op string, f func() error) {
	t.Helper()
	if err := f(); !model.IsNotFound(err) {
		t.Fatalf("%s: expected not found, got %v", op, err)
	}
}
