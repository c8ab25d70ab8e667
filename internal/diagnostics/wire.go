package diagnostics

import (
	"foodapp/internal/config"

	"go.uber.org/zap"
)

func NewModule(backend Backend, cfg config.Config, logger *zap.Logger) *Controller {
	settings := Settings{
		URLConfigured:  cfg.Store.URL != "",
		NameConfigured: cfg.Store.NameSet,
	}
	return NewController(NewService(backend, settings), logger)
}
