package usecase

import (
	"context"
	"encoding/json"

	"foodapp/internal/commons"
	"foodapp/internal/domain"
	"foodapp/internal/dto"

	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, order domain.Order) (*dto.PlacementResult, error)
	ListOrders(ctx context.Context, limit int64) ([]map[string]interface{}, error)
}

type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type PlaceOrderUseCase struct {
	service   OrderService
	publisher Publisher
	logger    *zap.Logger
}

func NewPlaceOrderUseCase(service OrderService, publisher Publisher, logger *zap.Logger) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		service:   service,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, order domain.Order) (*domain.OrderReceipt, error) {
	logger := commons.Logger(ctx, uc.logger)

	order.ApplyDefaults()
	if err := domain.Validate(order); err != nil {
		return nil, err
	}

	logger.Info("place order started", zap.Int("itemCount", len(order.Items)))

	result, err := uc.service.PlaceOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	logger.Info("order placed", zap.String("orderId", result.OrderID), zap.Float64("total", result.Order.Total))

	// The order is already stored; a failed publish is only logged.
	if err := uc.publishPlaced(ctx, result); err != nil {
		logger.Error("publishing order event failed", zap.String("orderId", result.OrderID), zap.Error(err))
	}

	return &domain.OrderReceipt{
		ID:     result.OrderID,
		Total:  result.Order.Total,
		Status: result.Order.Status,
	}, nil
}

func (uc *PlaceOrderUseCase) publishPlaced(ctx context.Context, result *dto.PlacementResult) error {
	items := make([]dto.OrderEventItem, len(result.Lines))
	for i, line := range result.Lines {
		items[i] = dto.OrderEventItem{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
		}
	}

	payload, err := json.Marshal(dto.OrderPlacedEvent{
		Type:       dto.EventOrderPlaced,
		OrderID:    result.OrderID,
		Customer:   result.Order.CustomerName,
		Status:     result.Order.Status,
		Total:      result.Order.Total,
		Items:      items,
		OccurredAt: result.Order.CreatedAt,
	})
	if err != nil {
		return err
	}

	return uc.publisher.Publish(ctx, result.OrderID, payload)
}

func (uc *PlaceOrderUseCase) ListOrders(ctx context.Context, limit int64) ([]map[string]interface{}, error) {
	return uc.service.ListOrders(ctx, limit)
}
