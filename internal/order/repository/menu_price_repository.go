package repository

import (
	"context"
	"fmt"

	"foodapp/internal/domain"
	"foodapp/internal/store"

	"github.com/spf13/cast"
)

type StoreMenuPriceRepository struct {
	store store.Store
}

func NewStoreMenuPriceRepository(s store.Store) *StoreMenuPriceRepository {
	return &StoreMenuPriceRepository{store: s}
}

// PriceIndex maps every menu item id to its current price. Prices are
// coerced from whatever numeric form the backend returned.
func (r *StoreMenuPriceRepository) PriceIndex(ctx context.Context) (map[string]float64, error) {
	docs, err := r.store.ReadMany(ctx, domain.MenuItemCollection, store.Query{})
	if err != nil {
		return nil, fmt.Errorf("reading menu prices: %w", err)
	}

	index := make(map[string]float64, len(docs))
	for _, doc := range docs {
		id, ok := store.DocumentID(doc)
		if !ok {
			continue
		}
		price, err := cast.ToFloat64E(doc["price"])
		if err != nil {
			return nil, fmt.Errorf("menu item %s has invalid price: %w", store.IDString(id), err)
		}
		index[store.IDString(id)] = price
	}
	return index, nil
}
