// Package listing implements the pagination and filtering contract shared by
// every list endpoint: parse raw query values, run a count and a bounded fetch
// side by side, and assemble the page metadata.
package listing

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps the page size a caller can ask for. Larger values are clamped.
	MaxLimit = 100
	// MaxPage keeps (page-1)*limit inside int. Any page this large is already past the end.
	MaxPage = math.MaxInt / MaxLimit
)

// PageRequest is a normalized page/limit pair. Both fields are always >= 1.
type PageRequest struct {
	Page  int
	Limit int
}

// Window is the offset/limit slice handed to the store.
type Window struct {
	Offset int
	Limit  int
}

// ParsePageRequest turns raw query values into a PageRequest.
// Missing, malformed or non-positive values fall back to the defaults instead of failing.
func ParsePageRequest(pageRaw, limitRaw string, defaultLimit int) PageRequest {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	return PageRequest{
		Page:  min(positiveOr(pageRaw, DefaultPage), MaxPage),
		Limit: min(positiveOr(limitRaw, defaultLimit), MaxLimit),
	}
}

// Offset is the number of rows to skip before this page.
func (p PageRequest) Offset() int { return (p.Page - 1) * p.Limit }

// Window converts the request into the offset/limit pair the store reads.
func (p PageRequest) Window() Window { return Window{Offset: p.Offset(), Limit: p.Limit} }

// positiveOr parses a positive int. Positive values too large for int saturate
// at math.MaxInt so the caller's clamp applies instead of the default.
func positiveOr(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return n
	}
	if err != nil || n <= 0 {
		return def
	}
	return n
}
