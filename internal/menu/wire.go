package menu

import (
	"foodapp/internal/config"
	"foodapp/internal/store"

	"go.uber.org/zap"
)

func NewModule(s store.Store, cfg config.MenuConfig, logger *zap.Logger) *Controller {
	repo := NewStoreRepository(s)
	svc := NewService(repo, cfg.SeedOnEmpty, logger)
	return NewController(svc, logger)
}
