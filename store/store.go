package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidID is returned when an id string is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id")

// Collection exposes the document operations the handlers need. It is
// implemented by a Mongo-backed collection and by an in-memory one for tests.
type Collection interface {
	FindOne(ctx context.Context, filter bson.M, out interface{}) error
	FindAll(ctx context.Context, filter bson.M, opts *options.FindOptions, out interface{}) error
	InsertOne(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter bson.M, patch bson.M, upsert bool) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
}

// Store bundles the application's collections. It is created once at startup
// and injected into the controllers.
type Store struct {
	Users      Collection
	Products   Collection
	Cart       Collection
	Promocodes Collection
	Orders     Collection
}

// NewMongoStore wires the store to the apparel_avenue_db database.
func NewMongoStore(client *mongo.Client) *Store {
	db := client.Database("apparel_avenue_db")
	return &Store{
		Users:      &mongoCollection{db.Collection("users")},
		Products:   &mongoCollection{db.Collection("products")},
		Cart:       &mongoCollection{db.Collection("cart")},
		Promocodes: &mongoCollection{db.Collection("promocodes")},
		Orders:     &mongoCollection{db.Collection("orders")},
	}
}

// ParseID converts an id path parameter into an ObjectID. A malformed id
// fails here, before any query is issued.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	return c.coll.FindOne(ctx, filter).Decode(out)
}

func (c *mongoCollection) FindAll(ctx context.Context, filter bson.M, opts *options.FindOptions, out interface{}) error {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = c.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = c.coll.Find(ctx, filter)
	}
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, doc)
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, patch bson.M, upsert bool) (*mongo.UpdateResult, error) {
	update := bson.M{"$set": patch}
	if upsert {
		return c.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	}
	return c.coll.UpdateOne(ctx, filter, update)
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, filter)
}

func (c *mongoCollection) DeleteMany(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	return c.coll.DeleteMany(ctx, filter)
}
