package dto

type ProductFilters struct {
	SearchQuery string // Case-insensitive substring of name
	SortBy      string // id, name
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}
