package handler

// APIPrefix is the canonical base path for the public HTTP API.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIPrefix = "/api"

// Default page sizes: the public site pages by 10, the back office by 20.
const (
	publicPageSize = 10
	adminPageSize  = 20
)
