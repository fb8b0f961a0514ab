package product

import (
	"context"

	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// FindByName returns the lowest-id product whose name matches exactly.
	FindByName(ctx context.Context, name string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
}
