package order

import (
	"context"

	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/order/dto"
)

type Repository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	CreateItem(ctx context.Context, item *model.OrderItem) error

	// Orders come back with Items populated; each item carries its Product.
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	FindAllWithItems(ctx context.Context) ([]model.Order, error)

	// Items come back with both Order and Product populated.
	FindItemByID(ctx context.Context, id int64) (*model.OrderItem, error)
	FindItems(ctx context.Context, filters *dto.OrderItemFilters) ([]model.OrderItem, error)
}
