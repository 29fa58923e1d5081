// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/repository"
	"github.com/maxviazov/talent-agency-service/internal/service"
	"github.com/maxviazov/talent-agency-service/internal/upload"
)

// Envelope wraps every successful response.
type Envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Pagination *listing.Pagination `json:"pagination,omitempty"`
	Message    string              `json:"message,omitempty"`
}

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error"`
	Code    string               `json:"code"`
	Details []service.FieldError `json:"details,omitempty"`
}

func failure(code, message string) ErrorPayload {
	return ErrorPayload{Error: message, Code: code}
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Anything unrecognized becomes a 500 whose detail never reaches the client.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Success: true}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		p := failure("invalid_input", "Validation failed")
		p.Details = service.FieldErrors(err)
		return http.StatusBadRequest, p
	}

	var rej *upload.RejectError
	if errors.As(err, &rej) {
		return http.StatusBadRequest, failure("invalid_upload", rej.Message)
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return statusOf(svcErr.Kind), failure(svcErr.Code, svcErr.Message)
	}

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, failure("unauthorized", "Unauthorized")
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, failure("not_found", "Not found")
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, failure("already_exists", "Already exists")
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, failure("conflict", "Conflict")
	default:
		return http.StatusInternalServerError, failure("internal_error", "Internal server error")
	}
}

func statusOf(kind error) int {
	switch {
	case errors.Is(kind, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, repository.ErrAlreadyExists), errors.Is(kind, repository.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes an error response and aborts the context.
// Server-side failures are logged with the request-scoped logger.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// WritePage writes one page of a list with its pagination block.
func WritePage[T any](c *gin.Context, page listing.Page[T]) {
	p := page.Pagination
	c.JSON(http.StatusOK, Envelope{Success: true, Data: page.Items, Pagination: &p})
}

// WriteMessage writes a success envelope carrying a message and optional data.
func WriteMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}
