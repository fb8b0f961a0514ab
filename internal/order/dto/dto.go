package dto

type OrderItemFilters struct {
	MinQuantity *int    // quantity >= MinQuantity
	ProductName *string // exact match on the product's name; nil skips the filter
	// ByQuantityDesc orders highest quantity first; equal quantities keep id order.
	ByQuantityDesc bool
	Limit          int
}
