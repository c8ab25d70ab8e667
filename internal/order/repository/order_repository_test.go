package repository

import (
	"context"
	"testing"
	"time"

	"foodapp/internal/domain"
	"foodapp/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placedOrder(name string, total float64) domain.PlacedOrder {
	return domain.PlacedOrder{
		Order: domain.Order{
			CustomerName:    name,
			CustomerPhone:   "555-0100",
			CustomerAddress: "1 Loop Rd",
			Items:           []domain.OrderItem{{MenuItemID: "65a1f0c2e4b0a1b2c3d4e5f6", Quantity: 1}},
			Status:          domain.OrderStatusPending,
		},
		Total:     total,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStoreOrderRepository_InsertAndFindRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreOrderRepository(store.NewMemoryStore())

	var ids []string
	for _, name := range []string{"first", "second", "third"} {
		id, err := repo.Insert(ctx, placedOrder(name, 1))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	docs, err := repo.FindRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "third", docs[0]["customer_name"])
	assert.Equal(t, "second", docs[1]["customer_name"])
	id, ok := store.DocumentID(docs[0])
	require.True(t, ok)
	assert.Equal(t, ids[2], store.IDString(id))
}

func TestStoreOrderRepository_StoredShape(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreOrderRepository(store.NewMemoryStore())

	_, err := repo.Insert(ctx, placedOrder("Ada", 25.48))
	require.NoError(t, err)

	docs, err := repo.FindRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, 25.48, doc["total"])
	assert.Equal(t, domain.OrderStatusPending, doc["status"])
	assert.Contains(t, doc, "created_at")
	assert.NotContains(t, doc, "notes")
	assert.NotContains(t, doc, "Order")
}
