package store

import (
	"context"

	"github.com/fekuna/omnipos-storeorders/internal/model"
)

type Repository interface {
	Create(ctx context.Context, store *model.Store) error
	FindByID(ctx context.Context, id int64) (*model.Store, error)
	FindByNaturalKey(ctx context.Context, name, city, state string) (*model.Store, error)
}
