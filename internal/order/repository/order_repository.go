package repository

import (
	"context"
	"fmt"

	"foodapp/internal/domain"
	"foodapp/internal/store"
)

type StoreOrderRepository struct {
	store store.Store
}

func NewStoreOrderRepository(s store.Store) *StoreOrderRepository {
	return &StoreOrderRepository{store: s}
}

func (r *StoreOrderRepository) Insert(ctx context.Context, order domain.PlacedOrder) (string, error) {
	id, err := r.store.Create(ctx, domain.OrderCollection, order)
	if err != nil {
		return "", fmt.Errorf("inserting order: %w", err)
	}
	return store.IDString(id), nil
}

// FindRecent returns at most limit orders, newest first.
func (r *StoreOrderRepository) FindRecent(ctx context.Context, limit int64) ([]store.Document, error) {
	docs, err := r.store.ReadMany(ctx, domain.OrderCollection, store.Query{Limit: limit, Newest: true})
	if err != nil {
		return nil, fmt.Errorf("reading orders: %w", err)
	}
	return docs, nil
}
