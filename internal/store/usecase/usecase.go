package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-storeorders/internal/inventory"
	"github.com/fekuna/omnipos-storeorders/internal/logger"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/store"
	"go.uber.org/zap"
)

type storeUseCase struct {
	repo      store.Repository
	stockRepo inventory.Repository
	logger    logger.ZapLogger
}

func NewStoreUseCase(repo store.Repository, stockRepo inventory.Repository, log logger.ZapLogger) store.UseCase {
	return &storeUseCase{
		repo:      repo,
		stockRepo: stockRepo,
		logger:    log,
	}
}

func (uc *storeUseCase) GetStoreWithStock(ctx context.Context, id int64) (*model.Store, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get store %d: %w", id, err)
	}
	if s == nil {
		return nil, nil
	}

	stocks, err := uc.stockRepo.ListByStore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock for store %d: %w", id, err)
	}
	s.Stocks = stocks
	uc.logger.Debug("loaded store stock", zap.Int64("store_id", id), zap.Int("rows", len(stocks)))
	return s, nil
}

func (uc *storeUseCase) FindStore(ctx context.Context, name, city, state string) (*model.Store, error) {
	s, err := uc.repo.FindByNaturalKey(ctx, name, city, state)
	if err != nil {
		return nil, fmt.Errorf("failed to find store %q: %w", name, err)
	}
	return s, nil
}

func (uc *storeUseCase) ListProductStock(ctx context.Context, productID int64) ([]model.StoreStock, error) {
	stocks, err := uc.stockRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock for product %d: %w", productID, err)
	}
	uc.logger.Debug("loaded product stock", zap.Int64("product_id", productID), zap.Int("rows", len(stocks)))
	return stocks, nil
}
