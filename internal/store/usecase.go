package store

import (
	"context"

	"github.com/fekuna/omnipos-storeorders/internal/model"
)

type UseCase interface {
	// GetStoreWithStock returns the store with Stocks populated, each
	// stock row carrying its Product. Nil when no such store exists.
	GetStoreWithStock(ctx context.Context, id int64) (*model.Store, error)
	FindStore(ctx context.Context, name, city, state string) (*model.Store, error)
	// ListProductStock returns every stock row holding the product, each
	// carrying its Store and Product.
	ListProductStock(ctx context.Context, productID int64) ([]model.StoreStock, error)
}
