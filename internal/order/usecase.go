package order

import (
	"context"

	"github.com/fekuna/omnipos-storeorders/internal/model"
)

type UseCase interface {
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	GetOrderItem(ctx context.Context, id int64) (*model.OrderItem, error)

	// "Orders where a product is sold" has three readings; all are offered.
	ListOrdersWithItems(ctx context.Context) ([]model.Order, error)
	ListItemsWithMinQuantity(ctx context.Context, minQuantity int) ([]model.OrderItem, error)
	ListItemsByProductName(ctx context.Context, productName string) ([]model.OrderItem, error)

	GetTopItemByProductName(ctx context.Context, productName string) (*model.OrderItem, error)
}
