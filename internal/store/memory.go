package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps documents in process. Documents go through the same BSON
// encoding the mongo backend uses, so readers see identical value types.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Create(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return primitive.NilObjectID, err
	}

	d, err := toDocument(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("encoding %s document: %w", collection, err)
	}

	id := primitive.NewObjectID()
	d[IDField] = id

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], d)
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryStore) ReadMany(ctx context.Context, collection string, q Query) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	stored := s.collections[collection]
	docs := make([]Document, 0, len(stored))
	for _, d := range stored {
		docs = append(docs, copyDocument(d))
	}
	s.mu.RUnlock()

	if q.Newest {
		for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
			docs[i], docs[j] = docs[j], docs[i]
		}
	}
	if q.Limit > 0 && int64(len(docs)) > q.Limit {
		docs = docs[:q.Limit]
	}
	return docs, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) ListCollections(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	s.mu.RUnlock()

	sort.Strings(names)
	return names, nil
}

// Count reports how many documents a collection holds.
func (s *MemoryStore) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Close(context.Context) error { return nil }

func copyDocument(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
