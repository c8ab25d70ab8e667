package menu

import (
	"context"
	"fmt"

	"foodapp/internal/domain"
	"foodapp/internal/store"
)

type StoreRepository struct {
	store store.Store
}

func NewStoreRepository(s store.Store) *StoreRepository {
	return &StoreRepository{store: s}
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]store.Document, error) {
	docs, err := r.store.ReadMany(ctx, domain.MenuItemCollection, store.Query{})
	if err != nil {
		return nil, fmt.Errorf("reading menu items: %w", err)
	}
	return docs, nil
}

func (r *StoreRepository) IsEmpty(ctx context.Context) (bool, error) {
	docs, err := r.store.ReadMany(ctx, domain.MenuItemCollection, store.Query{Limit: 1})
	if err != nil {
		return false, fmt.Errorf("probing menu items: %w", err)
	}
	return len(docs) == 0, nil
}

func (r *StoreRepository) Insert(ctx context.Context, item domain.MenuItem) (string, error) {
	id, err := r.store.Create(ctx, domain.MenuItemCollection, item)
	if err != nil {
		return "", fmt.Errorf("inserting menu item %q: %w", item.Name, err)
	}
	return store.IDString(id), nil
}
