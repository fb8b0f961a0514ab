package model

// StoreStock links a Store to a Product it carries.
type StoreStock struct {
	ID        int64    `db:"id" json:"id"`
	StoreID   int64    `db:"store_id" json:"store_id"`
	ProductID int64    `db:"product_id" json:"product_id"`
	Quantity  int      `db:"quantity" json:"quantity"`
	Store     *Store   `db:"-" json:"store,omitempty"`   // Joined data
	Product   *Product `db:"-" json:"product,omitempty"` // Joined data
}
