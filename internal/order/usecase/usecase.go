package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-storeorders/internal/logger"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/order"
	"github.com/fekuna/omnipos-storeorders/internal/order/dto"
	"go.uber.org/zap"
)

type orderUseCase struct {
	repo   order.Repository
	logger logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return o, nil
}

func (uc *orderUseCase) GetOrderItem(ctx context.Context, id int64) (*model.OrderItem, error) {
	item, err := uc.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order item %d: %w", id, err)
	}
	return item, nil
}

// ListOrdersWithItems treats every order as one where products are sold.
func (uc *orderUseCase) ListOrdersWithItems(ctx context.Context) ([]model.Order, error) {
	orders, err := uc.repo.FindAllWithItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	uc.logger.Debug("listed orders with items", zap.Int("orders", len(orders)))
	return orders, nil
}

func (uc *orderUseCase) ListItemsWithMinQuantity(ctx context.Context, minQuantity int) ([]model.OrderItem, error) {
	items, err := uc.repo.FindItems(ctx, &dto.OrderItemFilters{MinQuantity: &minQuantity})
	if err != nil {
		return nil, fmt.Errorf("failed to list order items with quantity >= %d: %w", minQuantity, err)
	}
	uc.logger.Debug("listed order items by quantity",
		zap.Int("min_quantity", minQuantity),
		zap.Int("items", len(items)),
	)
	return items, nil
}

func (uc *orderUseCase) ListItemsByProductName(ctx context.Context, productName string) ([]model.OrderItem, error) {
	items, err := uc.repo.FindItems(ctx, &dto.OrderItemFilters{ProductName: &productName})
	if err != nil {
		return nil, fmt.Errorf("failed to list order items for %q: %w", productName, err)
	}
	uc.logger.Debug("listed order items by product",
		zap.String("product", productName),
		zap.Int("items", len(items)),
	)
	return items, nil
}

// GetTopItemByProductName returns the item selling the most units of the
// product, the earliest one on a tie, or nil when the product was never sold.
func (uc *orderUseCase) GetTopItemByProductName(ctx context.Context, productName string) (*model.OrderItem, error) {
	items, err := uc.repo.FindItems(ctx, &dto.OrderItemFilters{
		ProductName:    &productName,
		ByQuantityDesc: true,
		Limit:          1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find top order item for %q: %w", productName, err)
	}
	if len(items) == 0 {
		uc.logger.Debug("no order items for product", zap.String("product", productName))
		return nil, nil
	}
	return &items[0], nil
}
