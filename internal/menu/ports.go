package menu

import (
	"context"

	"foodapp/internal/domain"
	"foodapp/internal/store"
)

type UseCase interface {
	ListMenu(ctx context.Context) ([]map[string]interface{}, error)
	CreateMenuItem(ctx context.Context, item domain.MenuItem) (*MenuItemResponse, error)
}

type Repository interface {
	FindAll(ctx context.Context) ([]store.Document, error)
	IsEmpty(ctx context.Context) (bool, error)
	Insert(ctx context.Context, item domain.MenuItem) (string, error)
}
