package listing

// Pagination is the metadata block returned next to every list.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one window of a larger ordered result set.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// TotalPages is ceil(total/limit); zero when there is nothing to page through.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Assemble combines fetched items and the total count into a Page.
// Items is never nil so it always serializes as a JSON array.
func Assemble[T any](req PageRequest, items []T, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	if len(items) > req.Limit {
		items = items[:req.Limit]
	}
	return Page[T]{
		Items: items,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: TotalPages(total, req.Limit),
		},
	}
}
