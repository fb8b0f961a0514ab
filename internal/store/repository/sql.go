package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-storeorders/internal/database"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB sqlx.ExtContext
}

// NewSQLRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, s *model.Store) error {
	query := `
        INSERT INTO stores (name, city, state)
        VALUES (:name, :city, :state)
        RETURNING id
    `
	id, err := database.InsertReturningID(ctx, r.DB, query, s)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Store, error) {
	var s model.Store
	query := r.DB.Rebind(`SELECT id, name, city, state FROM stores WHERE id = ?`)
	err := sqlx.GetContext(ctx, r.DB, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLRepository) FindByNaturalKey(ctx context.Context, name, city, state string) (*model.Store, error) {
	var s model.Store
	query := r.DB.Rebind(`
        SELECT id, name, city, state FROM stores
        WHERE name = ? AND city = ? AND state = ?
    `)
	err := sqlx.GetContext(ctx, r.DB, &s, query, name, city, state)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
