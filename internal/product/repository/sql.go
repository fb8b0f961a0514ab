package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-storeorders/internal/database"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/product/dto"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, p *model.Product) error {
	query := `INSERT INTO products (name) VALUES (:name) RETURNING id`
	id, err := database.InsertReturningID(ctx, r.DB, query, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := r.DB.Rebind(`SELECT id, name FROM products WHERE id = ?`)
	err := sqlx.GetContext(ctx, r.DB, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	query := r.DB.Rebind(`SELECT id, name FROM products WHERE name = ? ORDER BY id LIMIT 1`)
	err := sqlx.GetContext(ctx, r.DB, &product, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	products := []model.Product{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.SearchQuery != "" {
		conditions = append(conditions, "LOWER(name) LIKE :search")
		args["search"] = "%" + strings.ToLower(f.SearchQuery) + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Count
	countQuery, countArgs, err := r.DB.BindNamed("SELECT count(*) FROM products"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.GetContext(ctx, r.DB, &count, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	// List
	orderBy := "id"
	if f.SortBy == "name" {
		orderBy = "name"
	}
	if strings.ToLower(f.SortOrder) == "desc" {
		orderBy += " DESC"
	} else {
		orderBy += " ASC"
	}

	query := fmt.Sprintf("SELECT id, name FROM products%s ORDER BY %s", whereClause, orderBy)
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	listQuery, listArgs, err := r.DB.BindNamed(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.SelectContext(ctx, r.DB, &products, listQuery, listArgs...); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}
