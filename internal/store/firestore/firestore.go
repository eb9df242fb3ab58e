// Package firestore stores grocery lists as Cloud Firestore documents.
package firestore

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	pkgerrors "github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
)

// reservedID matches ids Firestore refuses (__name__ style).
var reservedID = regexp.MustCompile(`^__.*__$`)

// Store is a Firestore-backed implementation of store.Store.
type Store struct {
	client     *firestore.Client
	collection string
}

// Open creates a Firestore client for projectID. FIRESTORE_EMULATOR_HOST is honoured by the client.
func Open(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, pkgerrors.New("firestore project id is empty")
	}
	return firestore.NewClient(ctx, projectID)
}

// NewWithClient wraps an existing client; lists live in the given top-level collection.
func NewWithClient(client *firestore.Client, collection string) *Store {
	return &Store{client: client, collection: collection}
}

func (s *Store) Lists() store.GroceryLists { return s }

// HealthPing implements health.HealthPinger by reading at most one document.
func (s *Store) HealthPing(ctx context.Context) error {
	it := s.client.Collection(s.collection).Limit(1).Documents(ctx)
	defer it.Stop()
	if _, err := it.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

// Close releases the client.
func (s *Store) Close() error { return s.client.Close() }

type document struct {
	Title   string              `firestore:"title"`
	Items   []model.GroceryItem `firestore:"items"`
	Created time.Time           `firestore:"created,serverTimestamp"`
}

func validID(id string) bool {
	if id == "" || id == "." || id == ".." || len(id) > 1500 {
		return false
	}
	return !strings.Contains(id, "/") && !reservedID.MatchString(id)
}

func (s *Store) docRef(id string) (*firestore.DocumentRef, error) {
	if !validID(id) {
		return nil, model.ErrInvalidIdentifier
	}
	return s.client.Collection(s.collection).Doc(id), nil
}

func storageErr(op string, err error) error {
	return model.NewStorageError(op, pkgerrors.WithStack(err))
}

// classify maps Firestore NotFound to model.ErrNotFound and everything else to a storage error.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return model.ErrNotFound
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	return storageErr(op, err)
}

func toModel(id string, snap *firestore.DocumentSnapshot) (*model.GroceryList, error) {
	var doc document
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	return &model.GroceryList{ID: id, Title: doc.Title, Items: model.CloneItems(doc.Items)}, nil
}

func (s *Store) Create(ctx context.Context, l *model.GroceryList) (string, error) {
	ref := s.client.Collection(s.collection).NewDoc()
	if _, err := ref.Create(ctx, document{Title: l.Title, Items: model.CloneItems(l.Items)}); err != nil {
		return "", storageErr("create", err)
	}
	return ref.ID, nil
}

func (s *Store) List(ctx context.Context) ([]*model.GroceryList, error) {
	it := s.client.Collection(s.collection).OrderBy("created", firestore.Asc).Documents(ctx)
	defer it.Stop()

	out := []*model.GroceryList{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storageErr("list", err)
		}
		l, err := toModel(snap.Ref.ID, snap)
		if err != nil {
			return nil, storageErr("decode", err)
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*model.GroceryList, error) {
	ref, err := s.docRef(id)
	if err != nil {
		return nil, err
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, classify("get", err)
	}
	l, err := toModel(id, snap)
	if err != nil {
		return nil, storageErr("decode", err)
	}
	return l, nil
}

func (s *Store) Replace(ctx context.Context, id, title string, items []model.GroceryItem) error {
	ref, err := s.docRef(id)
	if err != nil {
		return err
	}
	// Update fails with NotFound when the document does not exist.
	_, err = ref.Update(ctx, []firestore.Update{
		{Path: "title", Value: title},
		{Path: "items", Value: model.CloneItems(items)},
	})
	return classify("replace", err)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	ref, err := s.docRef(id)
	if err != nil {
		return err
	}
	_, err = ref.Delete(ctx, firestore.Exists)
	return classify("delete", err)
}

// mutateItems applies f to the items of one document inside a Firestore transaction.
// ArrayUnion/ArrayRemove are not used: they de-duplicate by value, which would merge identical items.
func (s *Store) mutateItems(ctx context.Context, op, id string, f func([]model.GroceryItem) ([]model.GroceryItem, error)) error {
	ref, err := s.docRef(id)
	if err != nil {
		return err
	}
	err = s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		var doc document
		if err := snap.DataTo(&doc); err != nil {
			return err
		}
		items, err := f(model.CloneItems(doc.Items))
		if err != nil {
			return err
		}
		return tx.Update(ref, []firestore.Update{{Path: "items", Value: items}})
	})
	return classify(op, err)
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
