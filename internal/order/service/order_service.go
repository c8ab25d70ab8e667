package service

import (
	"context"
	"fmt"
	"time"

	"foodapp/internal/domain"
	"foodapp/internal/dto"
	apperrors "foodapp/internal/errors"
	"foodapp/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const menuItemKind = "Menu item"

type MenuPriceRepository interface {
	PriceIndex(ctx context.Context) (map[string]float64, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order domain.PlacedOrder) (string, error)
	FindRecent(ctx context.Context, limit int64) ([]store.Document, error)
}

type OrderService struct {
	menuPrices MenuPriceRepository
	orders     OrderRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewOrderService(menuPrices MenuPriceRepository, orders OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		menuPrices: menuPrices,
		orders:     orders,
		now:        time.Now,
		logger:     logger,
	}
}

// PlaceOrder prices every line against the current menu and stores the order
// with its computed total. The first unknown menu item aborts the call
// before anything is written.
func (s *OrderService) PlaceOrder(ctx context.Context, order domain.Order) (*dto.PlacementResult, error) {
	prices, err := s.menuPrices.PriceIndex(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("loading menu prices", err)
	}

	lines := make([]dto.PricedLine, 0, len(order.Items))
	total := decimal.Zero
	for i, item := range order.Items {
		price, ok := prices[item.MenuItemID]
		if !ok {
			return nil, apperrors.NewReferenceError(menuItemKind, fmt.Sprintf("items[%d].menu_item_id", i), item.MenuItemID)
		}
		total = total.Add(decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(item.Quantity))))
		lines = append(lines, dto.PricedLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  price,
		})
	}

	placed := domain.PlacedOrder{
		Order:     order,
		Total:     total.Round(2).InexactFloat64(),
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	id, err := s.orders.Insert(ctx, placed)
	if err != nil {
		return nil, apperrors.NewInternalError("storing order", err)
	}

	s.logger.Debug("order priced", zap.String("orderId", id), zap.Int("lines", len(lines)), zap.String("total", total.StringFixed(2)))

	return &dto.PlacementResult{
		OrderID: id,
		Order:   placed,
		Lines:   lines,
	}, nil
}

func (s *OrderService) ListOrders(ctx context.Context, limit int64) ([]map[string]interface{}, error) {
	docs, err := s.orders.FindRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.NewInternalError("listing orders", err)
	}
	return store.SerializeAll(docs), nil
}
