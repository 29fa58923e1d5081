package repository

import (
	"context"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// ModelRepository declares persistence operations for talent profiles.
// Count/Find satisfy listing.Source so the list path is shared with every other entity.
type ModelRepository interface {
	listing.Source[model.Model]
	Create(ctx context.Context, m model.Model) (model.Model, error)
	GetByID(ctx context.Context, id string) (model.Model, error)
	GetBySlug(ctx context.Context, slug string) (model.Model, error)
	Update(ctx context.Context, m model.Model) (model.Model, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}

// ArchiveRepository declares persistence operations for portfolio shoots.
// Reads always embed the owning model summary.
type ArchiveRepository interface {
	listing.Source[model.Archive]
	Create(ctx context.Context, a model.Archive) (model.Archive, error)
	GetByID(ctx context.Context, id string) (model.Archive, error)
	ListByModel(ctx context.Context, modelID string) ([]model.Archive, error)
	Update(ctx context.Context, a model.Archive) (model.Archive, error)
	Delete(ctx context.Context, id string) error
	DeleteByModel(ctx context.Context, modelID string) (int64, error)
}

// ApplicationRepository declares persistence operations for model applications.
type ApplicationRepository interface {
	listing.Source[model.Application]
	Create(ctx context.Context, a model.Application) (model.Application, error)
	GetByID(ctx context.Context, id string) (model.Application, error)
	// GetForUpdate locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id string) (model.Application, error)
	UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (model.Application, error)
	Delete(ctx context.Context, id string) error
}

// CastingRepository declares persistence operations for casting requests.
type CastingRepository interface {
	listing.Source[model.Casting]
	Create(ctx context.Context, c model.Casting) (model.Casting, error)
	GetByID(ctx context.Context, id string) (model.Casting, error)
	// GetForUpdate locks the row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id string) (model.Casting, error)
	UpdateStatus(ctx context.Context, id string, status model.CastingStatus) (model.Casting, error)
	Delete(ctx context.Context, id string) error
}

// AdminRepository declares persistence operations for back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, a model.Admin) (model.Admin, error)
	GetByID(ctx context.Context, id string) (model.Admin, error)
	GetByEmail(ctx context.Context, email string) (model.Admin, error)
}
