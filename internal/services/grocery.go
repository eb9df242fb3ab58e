package services

import (
	"context"
	"fmt"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
)

// GroceryListService maps each grocery-list operation onto exactly one store call.
// It holds no state besides the injected store handle.
type GroceryListService struct {
	store store.Store
}

func NewGroceryListService(s store.Store) *GroceryListService {
	return &GroceryListService{store: s}
}

func validateItem(field string, it model.GroceryItem) error {
	if it.Name == "" {
		return model.NewValidationError(field+".name", "is required")
	}
	return nil
}

func validateItems(items []model.GroceryItem) error {
	for i, it := range items {
		if err := validateItem(fmt.Sprintf("items[%d]", i), it); err != nil {
			return err
		}
	}
	return nil
}

// CreateList stores a new list and returns its id.
func (s *GroceryListService) CreateList(ctx context.Context, title string, items []model.GroceryItem) (string, error) {
	if err := validateItems(items); err != nil {
		return "", err
	}
	return s.store.Lists().Create(ctx, &model.GroceryList{Title: title, Items: model.CloneItems(items)})
}

func (s *GroceryListService) ListAll(ctx context.Context) ([]*model.GroceryList, error) {
	return s.store.Lists().List(ctx)
}

func (s *GroceryListService) GetList(ctx context.Context, listID string) (*model.GroceryList, error) {
	return s.store.Lists().Get(ctx, listID)
}

// ReplaceList overwrites title and the whole items sequence.
func (s *GroceryListService) ReplaceList(ctx context.Context, listID, title string, items []model.GroceryItem) error {
	if err := validateItems(items); err != nil {
		return err
	}
	return s.store.Lists().Replace(ctx, listID, title, model.CloneItems(items))
}

func (s *GroceryListService) DeleteList(ctx context.Context, listID string) error {
	return s.store.Lists().Delete(ctx, listID)
}

// AddItem appends item to the list; duplicates by name are allowed.
func (s *GroceryListService) AddItem(ctx context.Context, listID string, item model.GroceryItem) error {
	if err := validateItem("item", item); err != nil {
		return err
	}
	return s.store.Lists().PushItem(ctx, listID, item)
}

// UpdateItemPurchased sets purchased on the first item named itemName.
// A missing list and a missing item both report model.ErrNotFound.
func (s *GroceryListService) UpdateItemPurchased(ctx context.Context, listID, itemName string, purchased bool) error {
	return s.store.Lists().SetItemPurchased(ctx, listID, itemName, purchased)
}

// DeleteItem removes every item named itemName.
// A missing list and a missing item both report model.ErrNotFound.
func (s *GroceryListService) DeleteItem(ctx context.Context, listID, itemName string) error {
	return s.store.Lists().PullItems(ctx, listID, itemName)
}
