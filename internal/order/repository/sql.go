package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-storeorders/internal/database"
	"github.com/fekuna/omnipos-storeorders/internal/model"
	"github.com/fekuna/omnipos-storeorders/internal/order/dto"
	"github.com/jmoiron/sqlx"
)

const selectItems = `
    SELECT oi.id AS id, oi.order_id AS order_id, oi.product_id AS product_id, oi.quantity AS quantity,
           o.order_date AS order_date,
           p.name AS product_name
    FROM order_items oi
    JOIN orders o ON o.id = oi.order_id
    JOIN products p ON p.id = oi.product_id
`

type itemRow struct {
	model.OrderItem
	OrderDate   time.Time `db:"order_date"`
	ProductName string    `db:"product_name"`
}

func (row itemRow) toModel() model.OrderItem {
	item := row.OrderItem
	item.Order = &model.Order{ID: row.OrderID, OrderDate: row.OrderDate}
	item.Product = &model.Product{ID: row.ProductID, Name: row.ProductName}
	return item
}

type SQLRepository struct {
	DB sqlx.ExtContext
}

func NewSQLRepository(db sqlx.ExtContext) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) CreateOrder(ctx context.Context, o *model.Order) error {
	query := `INSERT INTO orders (order_date) VALUES (:order_date) RETURNING id`
	id, err := database.InsertReturningID(ctx, r.DB, query, o)
	if err != nil {
		return err
	}
	o.ID = id
	return nil
}

func (r *SQLRepository) CreateItem(ctx context.Context, item *model.OrderItem) error {
	query := `
        INSERT INTO order_items (order_id, product_id, quantity)
        VALUES (:order_id, :product_id, :quantity)
        RETURNING id
    `
	id, err := database.InsertReturningID(ctx, r.DB, query, item)
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	orders, err := r.findOrders(ctx, `SELECT id, order_date FROM orders WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

func (r *SQLRepository) FindAllWithItems(ctx context.Context) ([]model.Order, error) {
	return r.findOrders(ctx, `SELECT id, order_date FROM orders ORDER BY id`)
}

// findOrders loads the matching orders, then their items in one IN query.
func (r *SQLRepository) findOrders(ctx context.Context, query string, args ...interface{}) ([]model.Order, error) {
	orders := []model.Order{}
	if err := sqlx.SelectContext(ctx, r.DB, &orders, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	orderIDs := make([]int64, 0, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		orderIDs = append(orderIDs, orders[i].ID)
		index[orders[i].ID] = i
		orders[i].Items = []model.OrderItem{}
	}

	itemQuery, itemArgs, err := sqlx.In(selectItems+` WHERE oi.order_id IN (?) ORDER BY oi.id`, orderIDs)
	if err != nil {
		return nil, err
	}

	var rows []itemRow
	if err := sqlx.SelectContext(ctx, r.DB, &rows, r.DB.Rebind(itemQuery), itemArgs...); err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	for _, row := range rows {
		item := row.toModel()
		// The parent is the enclosing order.
		item.Order = nil
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	return orders, nil
}

func (r *SQLRepository) FindItemByID(ctx context.Context, id int64) (*model.OrderItem, error) {
	items, err := r.queryItems(ctx, selectItems+` WHERE oi.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *SQLRepository) FindItems(ctx context.Context, f *dto.OrderItemFilters) ([]model.OrderItem, error) {
	conditions := []string{}
	args := []interface{}{}

	if f.MinQuantity != nil {
		conditions = append(conditions, "oi.quantity >= ?")
		args = append(args, *f.MinQuantity)
	}
	if f.ProductName != nil {
		conditions = append(conditions, "p.name = ?")
		args = append(args, *f.ProductName)
	}

	query := selectItems
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if f.ByQuantityDesc {
		query += " ORDER BY oi.quantity DESC, oi.id ASC"
	} else {
		query += " ORDER BY oi.id ASC"
	}
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	return r.queryItems(ctx, query, args...)
}

func (r *SQLRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]model.OrderItem, error) {
	var rows []itemRow
	if err := sqlx.SelectContext(ctx, r.DB, &rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	items := make([]model.OrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}
