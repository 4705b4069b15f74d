package store

import (
	"bytes"
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMemoryStore returns a Store backed by in-memory collections. It mirrors
// the Mongo semantics the handlers rely on (insertion order, $in deletes,
// $set merges with upsert) so handler tests run without a database.
func NewMemoryStore() *Store {
	return &Store{
		Users:      &memoryCollection{},
		Products:   &memoryCollection{},
		Cart:       &memoryCollection{},
		Promocodes: &memoryCollection{},
		Orders:     &memoryCollection{},
	}
}

type memoryCollection struct {
	mu   sync.Mutex
	docs []bson.M
}

func (c *memoryCollection) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if matches(doc, filter) {
			return decodeDoc(doc, out)
		}
	}
	return mongo.ErrNoDocuments
}

func (c *memoryCollection) FindAll(ctx context.Context, filter bson.M, opts *options.FindOptions, out interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var results []bson.M
	for _, doc := range c.docs {
		if matches(doc, filter) {
			results = append(results, doc)
		}
	}
	if opts != nil && opts.Sort != nil {
		applySort(results, opts.Sort)
	}
	if opts != nil && opts.Projection != nil {
		for i, doc := range results {
			results[i] = project(doc, opts.Projection)
		}
	}

	outValue := reflect.ValueOf(out).Elem()
	slice := reflect.MakeSlice(outValue.Type(), 0, len(results))
	for _, doc := range results {
		elem := reflect.New(outValue.Type().Elem())
		if err := decodeDoc(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	outValue.Set(slice)
	return nil
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	normalized, err := normalize(doc)
	if err != nil {
		return nil, err
	}
	id, ok := normalized["_id"]
	if !ok {
		id = primitive.NewObjectID()
		normalized["_id"] = id
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, normalized)
	return &mongo.InsertOneResult{InsertedID: id}, nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter bson.M, patch bson.M, upsert bool) (*mongo.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if matches(doc, filter) {
			for k, v := range patch {
				doc[k] = v
			}
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	if !upsert {
		return &mongo.UpdateResult{}, nil
	}

	doc := bson.M{}
	for k, v := range filter {
		if _, isOperator := v.(bson.M); !isOperator {
			doc[k] = v
		}
	}
	for k, v := range patch {
		doc[k] = v
	}
	id := primitive.NewObjectID()
	doc["_id"] = id
	c.docs = append(c.docs, doc)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, doc := range c.docs {
		if matches(doc, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (c *memoryCollection) DeleteMany(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var kept []bson.M
	var deleted int64
	for _, doc := range c.docs {
		if matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return &mongo.DeleteResult{DeletedCount: deleted}, nil
}

// normalize round-trips a document through bson so stored values carry the
// same types the driver would produce.
func normalize(doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeDoc(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func matches(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		if !matchValue(doc[key], want) {
			return false
		}
	}
	return true
}

func matchValue(got, want interface{}) bool {
	if m, ok := want.(bson.M); ok {
		if in, hasIn := m["$in"]; hasIn {
			values := reflect.ValueOf(in)
			for i := 0; i < values.Len(); i++ {
				if reflect.DeepEqual(got, values.Index(i).Interface()) {
					return true
				}
			}
			return false
		}
	}
	return reflect.DeepEqual(got, want)
}

// applySort only understands the sorts the handlers use: a single _id key.
func applySort(docs []bson.M, sortSpec interface{}) {
	spec, ok := sortSpec.(bson.D)
	if !ok || len(spec) != 1 || spec[0].Key != "_id" {
		return
	}
	descending := false
	if direction, ok := spec[0].Value.(int); ok && direction < 0 {
		descending = true
	}
	sort.SliceStable(docs, func(i, j int) bool {
		a, aok := docs[i]["_id"].(primitive.ObjectID)
		b, bok := docs[j]["_id"].(primitive.ObjectID)
		if !aok || !bok {
			return false
		}
		if descending {
			return bytes.Compare(a[:], b[:]) > 0
		}
		return bytes.Compare(a[:], b[:]) < 0
	})
}

func project(doc bson.M, projection interface{}) bson.M {
	spec, ok := projection.(bson.M)
	if !ok {
		return doc
	}
	out := bson.M{}
	if id, exists := doc["_id"]; exists {
		out["_id"] = id
	}
	for key, included := range spec {
		if isIncluded(included) {
			if value, exists := doc[key]; exists {
				out[key] = value
			}
		}
	}
	return out
}

func isIncluded(v interface{}) bool {
	switch n := v.(type) {
	case int:
		return n != 0
	case int32:
		return n != 0
	case int64:
		return n != 0
	case float64:
		return n != 0
	case bool:
		return n
	default:
		return false
	}
}
