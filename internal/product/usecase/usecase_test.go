package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-storeorders/internal/logger"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/product/dto"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRepo struct {
	byName map[string]*model.Product
	err    error
}

func (f *fakeRepo) Create(ctx context.Context, p *model.Product) error { return f.err }

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.byName {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindByName(ctx context.Context, name string) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byName[name], nil
}

func (f *fakeRepo) FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	out := []model.Product{}
	for _, p := range f.byName {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func newUseCase(t *testing.T, repo *fakeRepo) *productUseCase {
	return NewProductUseCase(repo, logger.Wrap(zaptest.NewLogger(t))).(*productUseCase)
}

func TestGetProductByName(t *testing.T) {
	coffee := &model.Product{ID: 1, Name: "Colombian Coffee Grounds"}
	uc := newUseCase(t, &fakeRepo{byName: map[string]*model.Product{coffee.Name: coffee}})
	ctx := context.Background()

	got, err := uc.GetProductByName(ctx, "Colombian Coffee Grounds")
	require.NoError(t, err)
	require.Equal(t, coffee, got)

	got, err = uc.GetProductByName(ctx, "Nonexistent Item")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestGetProduct(t *testing.T) {
	coffee := &model.Product{ID: 7, Name: "Colombian Coffee Grounds"}
	uc := newUseCase(t, &fakeRepo{byName: map[string]*model.Product{coffee.Name: coffee}})

	got, err := uc.GetProduct(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, coffee, got)
}

func TestRepositoryErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection refused")
	uc := newUseCase(t, &fakeRepo{err: boom})
	ctx := context.Background()

	_, err := uc.GetProductByName(ctx, "x")
	require.ErrorIs(t, err, boom)

	_, err = uc.GetProduct(ctx, 1)
	require.ErrorIs(t, err, boom)

	_, _, err = uc.ListProducts(ctx, nil)
	require.ErrorIs(t, err, boom)
}

func TestListProductsNilFilters(t *testing.T) {
	coffee := &model.Product{ID: 1, Name: "Colombian Coffee Grounds"}
	uc := newUseCase(t, &fakeRepo{byName: map[string]*model.Product{coffee.Name: coffee}})

	products, count, err := uc.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Len(t, products, 1)
}
