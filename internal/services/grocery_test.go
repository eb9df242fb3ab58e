package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store/memory"
)

// --- Fakes ---

// recordingStore counts store calls so tests can assert the single-call mapping.
type recordingStore struct {
	*memory.Store
	calls []string
	fail  error
}

func (r *recordingStore) Lists() store.GroceryLists { return &recordingLists{r} }

type recordingLists struct{ p *recordingStore }

func (l *recordingLists) record(op string) error {
	l.p.calls = append(l.p.calls, op)
	return l.p.fail
}

func (l *recordingLists) Create(ctx context.Context, gl *model.GroceryList) (string, error) {
	if err := l.record("create"); err != nil {
		return "", err
	}
	return l.p.Store.Create(ctx, gl)
}
func (l *recordingLists) List(ctx context.Context) ([]*model.GroceryList, error) {
	if err := l.record("list"); err != nil {
		return nil, err
	}
	return l.p.Store.List(ctx)
}
func (l *recordingLists) Get(ctx context.Context, id string) (*model.GroceryList, error) {
	if err := l.record("get"); err != nil {
		return nil, err
	}
	return l.p.Store.Get(ctx, id)
}
func (l *recordingLists) Replace(ctx context.Context, id, title string, items []model.GroceryItem) error {
	if err := l.record("replace"); err != nil {
		return err
	}
	return l.p.Store.Replace(ctx, id, title, items)
}
func (l *recordingLists) Delete(ctx context.Context, id string) error {
	if err := l.record("delete"); err != nil {
		return err
	}
	return l.p.Store.Delete(ctx, id)
}
func (l *recordingLists) PushItem(ctx context.Context, id string, item model.GroceryItem) error {
	if err := l.record("push"); err != nil {
		return err
	}
	return l.p.Store.PushItem(ctx, id, item)
}
func (l *recordingLists) SetItemPurchased(ctx context.Context, id, name string, purchased bool) error {
	if err := l.record("set_purchased"); err != nil {
		return err
	}
	return l.p.Store.SetItemPurchased(ctx, id, name, purchased)
}
func (l *recordingLists) PullItems(ctx context.Context, id, name string) error {
	if err := l.record("pull"); err != nil {
		return err
	}
	return l.p.Store.PullItems(ctx, id, name)
}

func newService() (*GroceryListService, *recordingStore) {
	rs := &recordingStore{Store: memory.New()}
	return NewGroceryListService(rs), rs
}

// --- Tests ---

func TestGroceryListService_WeeklyExample(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	id, err := svc.CreateList(ctx, "Weekly", []model.GroceryItem{{Name: "milk", Quantity: 2}})
	if err != nil {
		t.Fatalf("CreateList: %v", err)
	}
	got, err := svc.GetList(ctx, id)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	want := &model.GroceryList{ID: id, Title: "Weekly", Items: []model.GroceryItem{{Name: "milk", Quantity: 2}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}

	if err := svc.UpdateItemPurchased(ctx, id, "milk", true); err != nil {
		t.Fatalf("UpdateItemPurchased: %v", err)
	}
	got, _ = svc.GetList(ctx, id)
	if got.Items[0] != (model.GroceryItem{Name: "milk", Quantity: 2, Purchased: true}) {
		t.Fatalf("unexpected item after purchase: %+v", got.Items[0])
	}
}

func TestGroceryListService_SingleStoreCallPerOperation(t *testing.T) {
	svc, rs := newService()
	ctx := context.Background()

	id, _ := svc.CreateList(ctx, "t", nil)
	_, _ = svc.ListAll(ctx)
	_, _ = svc.GetList(ctx, id)
	_ = svc.ReplaceList(ctx, id, "t2", nil)
	_ = svc.AddItem(ctx, id, model.GroceryItem{Name: "milk", Quantity: 1})
	_ = svc.UpdateItemPurchased(ctx, id, "milk", true)
	_ = svc.DeleteItem(ctx, id, "milk")
	_ = svc.DeleteList(ctx, id)

	want := []string{"create", "list", "get", "replace", "push", "set_purchased", "pull", "delete"}
	if !reflect.DeepEqual(rs.calls, want) {
		t.Fatalf("calls = %v, want %v", rs.calls, want)
	}
}

func TestGroceryListService_ValidationStopsBeforeStore(t *testing.T) {
	svc, rs := newService()
	ctx := context.Background()

	_, err := svc.CreateList(ctx, "t", []model.GroceryItem{{Name: "ok"}, {Name: ""}})
	var ve *model.ValidationError
	if !errors.As(err, &ve) || ve.Field != "items[1].name" {
		t.Fatalf("expected validation error on items[1].name, got %v", err)
	}
	if err := svc.AddItem(ctx, "whatever", model.GroceryItem{}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.ReplaceList(ctx, "whatever", "t", []model.GroceryItem{{}}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(rs.calls) != 0 {
		t.Fatalf("store called despite invalid payload: %v", rs.calls)
	}
}

func TestGroceryListService_NotFoundCollapse(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id, _ := svc.CreateList(ctx, "t", []model.GroceryItem{{Name: "milk", Quantity: 1}})

	missingList := "6f1c1e2a-3c1b-4a8e-9f55-6c1e2b0d7a11"
	for name, err := range map[string]error{
		"update missing item": svc.UpdateItemPurchased(ctx, id, "eggs", true),
		"update missing list": svc.UpdateItemPurchased(ctx, missingList, "milk", true),
		"delete missing item": svc.DeleteItem(ctx, id, "eggs"),
		"delete missing list": svc.DeleteItem(ctx, missingList, "milk"),
	} {
		if !errors.Is(err, model.ErrNotFound) {
			t.Fatalf("%s: expected ErrNotFound, got %v", name, err)
		}
	}
	if _, err := svc.GetList(ctx, "xyz"); !errors.Is(err, model.ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestGroceryListService_StorageErrorPropagates(t *testing.T) {
	svc, rs := newService()
	rs.fail = model.NewStorageError("find", errors.New("no reachable servers"))
	if _, err := svc.ListAll(context.Background()); !errors.Is(err, model.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestGroceryListService_ReplaceThenAdd(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	id, _ := svc.CreateList(ctx, "t", nil)

	if err := svc.AddItem(ctx, id, model.GroceryItem{Name: "apples", Quantity: 3}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := svc.ReplaceList(ctx, id, "t", []model.GroceryItem{}); err != nil {
		t.Fatalf("ReplaceList: %v", err)
	}
	got, _ := svc.GetList(ctx, id)
	if len(got.Items) != 0 {
		t.Fatalf("replace should clear items, got %+v", got.Items)
	}
	if err := svc.AddItem(ctx, id, model.GroceryItem{Name: "pears", Quantity: 1}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	got, _ = svc.GetList(ctx, id)
	if len(got.Items) != 1 || got.Items[0].Name != "pears" {
		t.Fatalf("add after replace mismatch: %+v", got.Items)
	}
}
