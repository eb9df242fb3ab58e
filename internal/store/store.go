package store

import (
	"context"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (mongo, postgres, sqlite, firestore, memory).
type Store interface {
	Lists() GroceryLists
}

// GroceryLists is the grocery_lists collection. Every method touches a single document and is
// applied atomically by the driver.
//
// Drivers report model.ErrInvalidIdentifier for ids outside their native key format,
// model.ErrNotFound when no document (or, for item operations, no matching item) exists,
// and a *model.StorageError for anything else.
type GroceryLists interface {
	Create(ctx context.Context, l *model.GroceryList) (string, error)
	List(ctx context.Context) ([]*model.GroceryList, error)
	Get(ctx context.Context, id string) (*model.GroceryList, error)
	// Replace overwrites title and the entire items sequence.
	Replace(ctx context.Context, id, title string, items []model.GroceryItem) error
	Delete(ctx context.Context, id string) error
	// PushItem appends item to the end of items without a duplicate check.
	PushItem(ctx context.Context, id string, item model.GroceryItem) error
	// SetItemPurchased updates the first item named name.
	SetItemPurchased(ctx context.Context, id, name string, purchased bool) error
	// PullItems removes every item named name.
	PullItems(ctx context.Context, id, name string) error
}
