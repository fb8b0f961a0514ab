package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-storeorders/internal/logger"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/product"
	"github.com/fekuna/omnipos-storeorders/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return p, nil
}

// GetProductByName returns nil without error when nothing matches.
func (uc *productUseCase) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	p, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %q: %w", name, err)
	}
	if p == nil {
		uc.logger.Debug("product not found", zap.String("name", name))
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if filters == nil {
		filters = &dto.ProductFilters{}
	}
	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, count, nil
}
