package inventory

import (
	"context"

	"github.com/fekuna/omnipos-storeorders/internal/model"
)

type Repository interface {
	Create(ctx context.Context, stock *model.StoreStock) error

	// Reads populate both Store and Product on every row.
	FindByID(ctx context.Context, id int64) (*model.StoreStock, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.StoreStock, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.StoreStock, error)
}
