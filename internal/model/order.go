package model

import "time"

type Order struct {
	ID        int64       `db:"id" json:"id"`
	OrderDate time.Time   `db:"order_date" json:"order_date"`
	Items     []OrderItem `db:"-" json:"items,omitempty"` // Not in DB table directly
}

type OrderItem struct {
	ID        int64    `db:"id" json:"id"`
	OrderID   int64    `db:"order_id" json:"order_id"`
	ProductID int64    `db:"product_id" json:"product_id"`
	Quantity  int      `db:"quantity" json:"quantity"`
	Order     *Order   `db:"-" json:"order,omitempty"`   // Joined data
	Product   *Product `db:"-" json:"product,omitempty"` // Joined data
}
