// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/talent-agency-service/internal/auth"
	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrUnauthorized marks missing, invalid or revoked credentials (maps to HTTP 401).
var ErrUnauthorized = errors.New("unauthorized")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// InvalidInput lets transport code report problems it detects itself, such as a malformed body.
func InvalidInput(field, message string) error {
	return newInvalidInput([]FieldError{{Field: field, Message: message}})
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// Error is a domain failure with a client-facing message. Kind is one of the
// repository sentinels or ErrUnauthorized and decides the HTTP status.
type Error struct {
	Kind    error
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func notFound(entity string) error {
	return &Error{Kind: repository.ErrNotFound, Code: "not_found", Message: entity + " not found"}
}

func alreadyExists(message string) error {
	return &Error{Kind: repository.ErrAlreadyExists, Code: "already_exists", Message: message}
}

func invalidTransition[S ~string](from, to S) error {
	return &Error{
		Kind:    repository.ErrConflict,
		Code:    "invalid_transition",
		Message: "Invalid status transition from " + string(from) + " to " + string(to),
	}
}

func unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Code: "unauthorized", Message: message}
}

// orNotFound swaps a bare repository.ErrNotFound for the entity-aware error.
func orNotFound(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(entity)
	}
	return err
}

// ModelService defines talent profile use cases.
type ModelService interface {
	ListModels(ctx context.Context, q listing.Query) (listing.Page[model.Model], error)
	GetModel(ctx context.Context, id string) (model.Model, error)
	GetModelBySlug(ctx context.Context, slug string) (model.Model, error)
	CreateModel(ctx context.Context, in ModelInput) (model.Model, error)
	UpdateModel(ctx context.Context, id string, in ModelPatch) (model.Model, error)
	DeleteModel(ctx context.Context, id string) error
}

// ArchiveService defines portfolio shoot use cases.
type ArchiveService interface {
	ListArchives(ctx context.Context, q listing.Query) (listing.Page[model.Archive], error)
	GetArchive(ctx context.Context, id string) (model.Archive, error)
	CreateArchive(ctx context.Context, in ArchiveInput) (model.Archive, error)
	UpdateArchive(ctx context.Context, id string, in ArchivePatch) (model.Archive, error)
	DeleteArchive(ctx context.Context, id string) error
}

// ApplicationService defines model application use cases.
type ApplicationService interface {
	SubmitApplication(ctx context.Context, in ApplicationInput) (model.Application, error)
	ListApplications(ctx context.Context, q listing.Query) (listing.Page[model.Application], error)
	GetApplication(ctx context.Context, id string) (model.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, in ApplicationStatusInput) (model.Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

// CastingService defines casting request use cases.
type CastingService interface {
	SubmitCasting(ctx context.Context, in CastingInput) (model.Casting, error)
	ListCastings(ctx context.Context, q listing.Query) (listing.Page[model.Casting], error)
	GetCasting(ctx context.Context, id string) (model.Casting, error)
	UpdateCastingStatus(ctx context.Context, id string, in CastingStatusInput) (model.Casting, error)
	DeleteCasting(ctx context.Context, id string) error
}

// AdminService defines back-office session and account use cases.
type AdminService interface {
	Login(ctx context.Context, in LoginInput) (Session, error)
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, adminID string) (model.Admin, error)
	CreateAdmin(ctx context.Context, in AdminInput) (model.Admin, error)
}
