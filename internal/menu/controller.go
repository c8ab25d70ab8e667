package menu

import (
	"net/http"

	"foodapp/internal/commons"
	"foodapp/internal/domain"

	"go.uber.org/zap"
)

type Controller struct {
	useCase UseCase
	logger  *zap.Logger
}

func NewController(useCase UseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := c.useCase.ListMenu(r.Context())
	if err != nil {
		commons.WriteServiceError(w, r, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, items, c.logger)
}

func (c *Controller) HandleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := commons.DecodeJSON(r, &item); err != nil {
		commons.WriteServiceError(w, r, err, c.logger)
		return
	}

	created, err := c.useCase.CreateMenuItem(r.Context(), item)
	if err != nil {
		commons.WriteServiceError(w, r, err, c.logger)
		return
	}

	commons.Logger(r.Context(), c.logger).Info("menu item created", zap.String("id", created.ID), zap.String("name", item.Name))
	commons.WriteJSON(w, http.StatusCreated, created, c.logger)
}
