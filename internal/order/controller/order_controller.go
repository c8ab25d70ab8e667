package controller

import (
	"context"
	"net/http"
	"strconv"

	"foodapp/internal/commons"
	"foodapp/internal/domain"
	apperrors "foodapp/internal/errors"

	"go.uber.org/zap"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type OrderUseCase interface {
	PlaceOrder(ctx context.Context, order domain.Order) (*domain.OrderReceipt, error)
	ListOrders(ctx context.Context, limit int64) ([]map[string]interface{}, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := commons.DecodeJSON(r, &order); err != nil {
		commons.WriteServiceError(w, r, err, c.logger)
		return
	}

	receipt, err := c.useCase.PlaceOrder(r.Context(), order)
	if err != nil {
		commons.WriteServiceError(w, r, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, receipt, c.logger)
}

func (c *OrderController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		commons.WriteServiceError(w, r, err, c.logger)
		return
	}

	orders, err := c.useCase.ListOrders(r.Context(), limit)
	if err != nil {
		commons.WriteServiceError(w, r, err, c.logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, orders, c.logger)
}

func parseLimit(raw string) (int64, error) {
	if raw == "" {
		return DefaultListLimit, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 || limit > MaxListLimit {
		msg := "limit must be an integer between 1 and " + strconv.Itoa(MaxListLimit)
		return 0, apperrors.NewValidationError(msg, apperrors.ValidationDetail{
			Field:   "limit",
			Message: msg,
		})
	}
	return limit, nil
}
