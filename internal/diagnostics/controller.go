package diagnostics

import (
	"net/http"

	"foodapp/internal/commons"
	"foodapp/internal/dto"
	"foodapp/internal/schema"

	"go.uber.org/zap"
)

const rootMessage = "Food App API is running"

type Controller struct {
	checker Checker
	logger  *zap.Logger
}

func NewController(checker Checker, logger *zap.Logger) *Controller {
	return &Controller{
		checker: checker,
		logger:  logger,
	}
}

func (c *Controller) HandleRoot(w http.ResponseWriter, r *http.Request) {
	commons.WriteJSON(w, http.StatusOK, dto.MessageResponse{Message: rootMessage}, c.logger)
}

func (c *Controller) HandleSchema(w http.ResponseWriter, r *http.Request) {
	commons.WriteJSON(w, http.StatusOK, dto.SchemaResponse{Schemas: schema.All()}, c.logger)
}

func (c *Controller) HandleTest(w http.ResponseWriter, r *http.Request) {
	resp := c.checker.Check(r.Context())
	if resp.ConnectionStatus != statusConnected {
		commons.Logger(r.Context(), c.logger).Warn("store check failed", zap.String("database", resp.Database))
	}
	commons.WriteJSON(w, http.StatusOK, resp, c.logger)
}
