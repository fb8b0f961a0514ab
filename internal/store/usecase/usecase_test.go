package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-storeorders/internal/database/databasetest"
	invRepoPkg "github.com/fekuna/omnipos-storeorders/internal/inventory/repository"
	"github.com/fekuna/omnipos-storeorders/internal/logger"
	"github.com/fekuna/omnipos-storeorders/internal/seed"
	"github.com/fekuna/omnipos-storeorders/internal/store"
	storeRepoPkg "github.com/fekuna/omnipos-storeorders/internal/store/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func setup(t *testing.T) (store.UseCase, *seed.Dataset) {
	t.Helper()

	db := databasetest.NewSQLite(t)
	log := logger.Wrap(zaptest.NewLogger(t))

	data, err := seed.NewSeeder(db, log).Seed(context.Background())
	require.NoError(t, err)

	uc := NewStoreUseCase(storeRepoPkg.NewSQLRepository(db), invRepoPkg.NewSQLRepository(db), log)
	return uc, data
}

func TestGetStoreWithStock(t *testing.T) {
	uc, data := setup(t)

	s, err := uc.GetStoreWithStock(context.Background(), data.Store.ID)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Equal(t, seed.StoreName, s.Name)
	require.Len(t, s.Stocks, 2)

	require.Equal(t, seed.CoffeeName, s.Stocks[0].Product.Name)
	require.Equal(t, 17, s.Stocks[0].Quantity)
	require.Equal(t, seed.MugName, s.Stocks[1].Product.Name)
	require.Equal(t, 20, s.Stocks[1].Quantity)
}

func TestGetStoreWithStockMissing(t *testing.T) {
	uc, data := setup(t)

	s, err := uc.GetStoreWithStock(context.Background(), data.Store.ID+1)
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestFindStore(t *testing.T) {
	uc, data := setup(t)
	ctx := context.Background()

	s, err := uc.FindStore(ctx, seed.StoreName, seed.StoreCity, seed.StoreState)
	require.NoError(t, err)
	require.Equal(t, data.Store.ID, s.ID)

	s, err = uc.FindStore(ctx, seed.StoreName, "Miami", seed.StoreState)
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestListProductStock(t *testing.T) {
	uc, data := setup(t)
	ctx := context.Background()

	stocks, err := uc.ListProductStock(ctx, data.Mug.ID)
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	require.Equal(t, 20, stocks[0].Quantity)
	require.Equal(t, seed.StoreName, stocks[0].Store.Name)
	require.Equal(t, seed.MugName, stocks[0].Product.Name)

	stocks, err = uc.ListProductStock(ctx, data.Mug.ID+100)
	require.NoError(t, err)
	require.Empty(t, stocks)
}
