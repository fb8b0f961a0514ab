package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fekuna/omnipos-storeorders/internal/database"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/jmoiron/sqlx"
)

const selectStock = `
    SELECT ss.id AS id, ss.store_id AS store_id, ss.product_id AS product_id, ss.quantity AS quantity,
           s.name AS store_name, s.city AS store_city, s.state AS store_state,
           p.name AS product_name
    FROM store_stocks ss
    JOIN stores s ON s.id = ss.store_id
    JOIN products p ON p.id = ss.product_id
`

type stockRow struct {
	model.StoreStock
	StoreName   string `db:"store_name"`
	StoreCity   string `db:"store_city"`
	StoreState  string `db:"store_state"`
	ProductName string `db:"product_name"`
}

func (row stockRow) toModel() model.StoreStock {
	stock := row.StoreStock
	stock.Store = &model.Store{
		ID:    row.StoreID,
		Name:  row.StoreName,
		City:  row.StoreCity,
		State: row.StoreState,
	}
	stock.Product = &model.Product{ID: row.ProductID, Name: row.ProductName}
	return stock
}

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, stock *model.StoreStock) error {
	query := `
        INSERT INTO store_stocks (store_id, product_id, quantity)
        VALUES (:store_id, :product_id, :quantity)
        RETURNING id
    `
	id, err := database.InsertReturningID(ctx, r.DB, query, stock)
	if err != nil {
		return err
	}
	stock.ID = id
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.StoreStock, error) {
	var row stockRow
	query := r.DB.Rebind(selectStock + ` WHERE ss.id = ?`)
	err := sqlx.GetContext(ctx, r.DB, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	stock := row.toModel()
	return &stock, nil
}

func (r *SQLRepository) ListByStore(ctx context.Context, storeID int64) ([]model.StoreStock, error) {
	return r.list(ctx, selectStock+` WHERE ss.store_id = ? ORDER BY ss.id`, storeID)
}

func (r *SQLRepository) ListByProduct(ctx context.Context, productID int64) ([]model.StoreStock, error) {
	return r.list(ctx, selectStock+` WHERE ss.product_id = ? ORDER BY ss.id`, productID)
}

func (r *SQLRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.StoreStock, error) {
	var rows []stockRow
	if err := sqlx.SelectContext(ctx, r.DB, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	stocks := make([]model.StoreStock, 0, len(rows))
	for _, row := range rows {
		stocks = append(stocks, row.toModel())
	}
	return stocks, nil
}
