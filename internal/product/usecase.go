package product

import (
	"context"

	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/product/dto"
)

type UseCase interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
}
