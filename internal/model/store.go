package model

type Store struct {
	ID     int64        `db:"id" json:"id"`
	Name   string       `db:"name" json:"name"`
	City   string       `db:"city" json:"city"`
	State  string       `db:"state" json:"state"`
	Stocks []StoreStock `db:"-" json:"stocks,omitempty"` // Loaded on demand
}
