// Package mongo stores grocery lists as documents in a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/store"
)

// Open connects to MongoDB at uri and verifies connectivity with a ping.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo URI is empty")
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// NewWithClient constructs a store over database/collection of an already connected client.
func NewWithClient(client *mongo.Client, database, collection string) *Store {
	return &Store{client: client, coll: client.Database(database).Collection(collection)}
}

type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func (s *Store) Lists() store.GroceryLists { return &lists{coll: s.coll} }

// HealthPing implements health.HealthPinger.
func (s *Store) HealthPing(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// document is the stored shape: {_id, title, items}.
type document struct {
	ID    primitive.ObjectID  `bson:"_id,omitempty"`
	Title string              `bson:"title"`
	Items []model.GroceryItem `bson:"items"`
}

func (d *document) toModel() *model.GroceryList {
	return &model.GroceryList{ID: d.ID.Hex(), Title: d.Title, Items: model.CloneItems(d.Items)}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.ErrInvalidIdentifier
	}
	return oid, nil
}

func storageErr(op string, err error) error {
	return model.NewStorageError(op, pkgerrors.WithStack(err))
}

type lists struct{ coll *mongo.Collection }

func (l *lists) Create(ctx context.Context, gl *model.GroceryList) (string, error) {
	res, err := l.coll.InsertOne(ctx, document{Title: gl.Title, Items: model.CloneItems(gl.Items)})
	if err != nil {
		return "", storageErr("insert", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", storageErr("insert", fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}
	return oid.Hex(), nil
}

func (l *lists) List(ctx context.Context) ([]*model.GroceryList, error) {
	cur, err := l.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, storageErr("find", err)
	}
	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storageErr("find", err)
	}
	out := make([]*model.GroceryList, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toModel())
	}
	return out, nil
}

func (l *lists) Get(ctx context.Context, id string) (*model.GroceryList, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := l.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrNotFound
		}
		return nil, storageErr("find_one", err)
	}
	return doc.toModel(), nil
}

// updateOne applies update to the document matching filter; zero matches is ErrNotFound.
func (l *lists) updateOne(ctx context.Context, op string, filter bson.M, update bson.M) error {
	res, err := l.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return storageErr(op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (l *lists) Replace(ctx context.Context, id, title string, items []model.GroceryItem) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return l.updateOne(ctx, "replace", bson.M{"_id": oid},
		bson.M{"$set": bson.M{"title": title, "items": model.CloneItems(items)}})
}

func (l *lists) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := l.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storageErr("delete", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (l *lists) PushItem(ctx context.Context, id string, item model.GroceryItem) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return l.updateOne(ctx, "push_item", bson.M{"_id": oid},
		bson.M{"$push": bson.M{"items": item}})
}

// SetItemPurchased uses the positional operator, so only the first matching item changes.
func (l *lists) SetItemPurchased(ctx context.Context, id, name string, purchased bool) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return l.updateOne(ctx, "set_purchased", bson.M{"_id": oid, "items.name": name},
		bson.M{"$set": bson.M{"items.$.purchased": purchased}})
}

// PullItems filters on items.name so a missing name matches no document and the list is left as is.
func (l *lists) PullItems(ctx context.Context, id, name string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	return l.updateOne(ctx, "pull_items", bson.M{"_id": oid, "items.name": name},
		bson.M{"$pull": bson.M{"items": bson.M{"name": name}}})
}
