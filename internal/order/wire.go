package order

import (
	"foodapp/internal/order/controller"
	"foodapp/internal/order/repository"
	"foodapp/internal/order/service"
	"foodapp/internal/order/usecase"
	"foodapp/internal/store"

	"go.uber.org/zap"
)

func NewModule(s store.Store, publisher usecase.Publisher, logger *zap.Logger) *controller.OrderController {
	menuPriceRepo := repository.NewStoreMenuPriceRepository(s)
	orderRepo := repository.NewStoreOrderRepository(s)

	orderSvc := service.NewOrderService(menuPriceRepo, orderRepo, logger)
	uc := usecase.NewPlaceOrderUseCase(orderSvc, publisher, logger)

	return controller.NewOrderController(uc, logger)
}
