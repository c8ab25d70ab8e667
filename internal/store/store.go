// Package store is the document store adapter: named collections of
// schema-flexible documents, each carrying a store-assigned ObjectID under
// the "_id" key. Backends exist for MongoDB, MySQL, PostgreSQL and memory.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const IDField = "_id"

// Document is a raw stored record. The value under IDField is always a
// primitive.ObjectID.
type Document map[string]interface{}

// Query narrows a ReadMany call. A zero Limit reads the whole collection.
// Newest reverses the natural insertion order.
type Query struct {
	Limit  int64
	Newest bool
}

type Store interface {
	Create(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error)
	ReadMany(ctx context.Context, collection string, q Query) ([]Document, error)
	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
	Name() string
	Close(ctx context.Context) error
}

// IDString renders a native identity the way it is exposed to clients.
func IDString(id primitive.ObjectID) string {
	return id.Hex()
}

// DocumentID returns the native identity of doc.
func DocumentID(doc Document) (primitive.ObjectID, bool) {
	id, ok := doc[IDField].(primitive.ObjectID)
	return id, ok
}

// toDocument flattens a typed value into a Document using its bson tags.
func toDocument(v interface{}) (Document, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return Document(m), nil
}
