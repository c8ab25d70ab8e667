package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}
}

func (s *MongoStore) Create(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	d, err := toDocument(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("encoding %s document: %w", collection, err)
	}

	id := primitive.NewObjectID()
	d[IDField] = id

	if _, err := s.db.Collection(collection).InsertOne(ctx, bson.M(d)); err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting into %s: %w", collection, err)
	}
	return id, nil
}

func (s *MongoStore) ReadMany(ctx context.Context, collection string, q Query) ([]Document, error) {
	direction := 1
	if q.Newest {
		direction = -1
	}

	opts := options.Find().SetSort(bson.D{{Key: IDField, Value: direction}})
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("decoding %s documents: %w", collection, err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, Document(m))
	}
	return docs, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Name() string { return s.db.Name() }

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
