// Package memory is an in-process store.Store used by tests and DB_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
)

// Store keeps grocery lists in a map guarded by a RWMutex. Insertion order is kept for List.
type Store struct {
	mu    sync.RWMutex
	docs  map[string]*model.GroceryList
	order []string
}

// New returns an empty memory store.
func New() *Store {
	return &Store{docs: make(map[string]*model.GroceryList)}
}

func (s *Store) Lists() store.GroceryLists { return s }

// HealthPing implements health.HealthPinger; the memory store is always reachable.
func (s *Store) HealthPing(ctx context.Context) error { return ctx.Err() }

func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", model.ErrInvalidIdentifier
	}
	return u.String(), nil
}

func (s *Store) Create(ctx context.Context, l *model.GroceryList) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", model.NewStorageError("create", err)
	}
	doc := l.Clone()
	doc.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	s.order = append(s.order, doc.ID)
	return doc.ID, nil
}

func (s *Store) List(ctx context.Context) ([]*model.GroceryList, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStorageError("list", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.GroceryList, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id].Clone())
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*model.GroceryList, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return doc.Clone(), nil
}

// update runs f on the stored document under the write lock.
func (s *Store) update(id string, f func(doc *model.GroceryList) error) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[key]
	if !ok {
		return model.ErrNotFound
	}
	return f(doc)
}

func (s *Store) Replace(_ context.Context, id, title string, items []model.GroceryItem) error {
	return s.update(id, func(doc *model.GroceryList) error {
		doc.Title = title
		doc.Items = model.CloneItems(items)
		return nil
	})
}

func (s *Store) Delete(_ context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[key]; !ok {
		return model.ErrNotFound
	}
	delete(s.docs, key)
	for i, v := range s.order {
		if v == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) PushItem(_ context.Context, id string, item model.GroceryItem) error {
	return s.update(id, func(doc *model.GroceryList) error {
		doc.Items = append(doc.Items, item)
		return nil
	})
}

func (s *Store) SetItemPurchased(_ context.Context, id, name string, purchased bool) error {
	return s.update(id, func(doc *model.GroceryList) error {
		if !model.SetPurchased(doc.Items, name, purchased) {
			return model.ErrNotFound
		}
		return nil
	})
}

func (s *Store) PullItems(_ context.Context, id, name string) error {
	return s.update(id, func(doc *model.GroceryList) error {
		items, removed := model.RemoveItems(doc.Items, name)
		if removed == 0 {
			return model.ErrNotFound
		}
		doc.Items = items
		return nil
	})
}
