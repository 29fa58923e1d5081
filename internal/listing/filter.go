package listing

import "strings"

// Filter field names as they appear in query strings.
const (
	FieldCategory = "category"
	FieldModelID  = "modelId"
	FieldStatus   = "status"
)

// allCategories is the sentinel category that means "do not filter".
const allCategories = "ALL"

// Filter is a single optional equality condition. The zero value matches everything.
type Filter struct {
	Field string
	Value string
}

// Equal builds a filter on field from a raw query value.
// An empty or blank value yields the zero Filter. Any other value is passed
// through verbatim: unknown values match nothing rather than failing.
func Equal(field, raw string) Filter {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Filter{}
	}
	return Filter{Field: field, Value: v}
}

// Category builds the model category filter, treating ALL as no filter.
func Category(raw string) Filter {
	f := Equal(FieldCategory, raw)
	if f.Value == allCategories {
		return Filter{}
	}
	return f
}

// IsZero reports whether the filter is absent and every row matches.
func (f Filter) IsZero() bool { return f.Field == "" }

// Query is everything a list operation needs after request parsing.
type Query struct {
	Filter Filter
	Page   PageRequest
}
