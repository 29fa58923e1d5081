package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
)

// archiveSelect joins the owning model so every read carries its summary.
const archiveSelect = `SELECT a.id, a.title, a.brand, a.images, a.model_id, a.created_at, a.updated_at,
	m.id, m.name, m.slug, m.profile_image
	FROM archives a JOIN models m ON m.id = a.model_id`

var archiveFilters = map[string]string{listing.FieldModelID: "a.model_id"}

type archiveRepository struct{ pool *pgxpool.Pool }

func NewArchiveRepository(pool *pgxpool.Pool) repository.ArchiveRepository {
	return &archiveRepository{pool: pool}
}

func scanArchive(row pgx.Row) (model.Archive, error) {
	var (
		a  model.Archive
		ms model.ModelSummary
	)
	err := row.Scan(&a.ID, &a.Title, &a.Brand, &a.Images, &a.ModelID, &a.CreatedAt, &a.UpdatedAt,
		&ms.ID, &ms.Name, &ms.Slug, &ms.ProfileImage)
	if err != nil {
		return model.Archive{}, err
	}
	a.Model = &ms
	return a, nil
}

// Create inserts the row and reads it back joined with its model in one statement.
// An unknown model_id surfaces as ErrConflict from the foreign key.
func (r *archiveRepository) Create(ctx context.Context, a model.Archive) (model.Archive, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Archive{}, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`WITH a AS (
			INSERT INTO archives (id, title, brand, images, model_id)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, title, brand, images, model_id, created_at, updated_at
		)
		SELECT a.id, a.title, a.brand, a.images, a.model_id, a.created_at, a.updated_at,
			m.id, m.name, m.slug, m.profile_image
		FROM a JOIN models m ON m.id = a.model_id`,
		a.ID, a.Title, a.Brand, nonNil(a.Images), a.ModelID,
	)
	out, err := scanArchive(row)
	if err != nil {
		return model.Archive{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *archiveRepository) GetByID(ctx context.Context, id string) (model.Archive, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Archive{}, err
	}
	out, err := scanArchive(getQ(ctx, r.pool).QueryRow(ctx, archiveSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return model.Archive{}, notFoundOr(err)
	}
	return out, nil
}

// ListByModel returns every archive of a model, newest first, for the model detail view.
func (r *archiveRepository) ListByModel(ctx context.Context, modelID string) ([]model.Archive, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		archiveSelect+` WHERE a.model_id = $1 ORDER BY a.created_at DESC, a.id DESC`, modelID)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return collectArchives(rows, 0)
}

func (r *archiveRepository) Update(ctx context.Context, a model.Archive) (model.Archive, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Archive{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`WITH a AS (
			UPDATE archives SET title = $2, brand = $3, images = $4, model_id = $5, updated_at = now()
			WHERE id = $1
			RETURNING id, title, brand, images, model_id, created_at, updated_at
		)
		SELECT a.id, a.title, a.brand, a.images, a.model_id, a.created_at, a.updated_at,
			m.id, m.name, m.slug, m.profile_image
		FROM a JOIN models m ON m.id = a.model_id`,
		a.ID, a.Title, a.Brand, nonNil(a.Images), a.ModelID,
	)
	out, err := scanArchive(row)
	if err != nil {
		return model.Archive{}, notFoundOr(err)
	}
	return out, nil
}

func (r *archiveRepository) Delete(ctx context.Context, id string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	return deleteByID(ctx, getQ(ctx, r.pool), "archives", id)
}

// DeleteByModel removes every archive of a model and reports how many went.
func (r *archiveRepository) DeleteByModel(ctx context.Context, modelID string) (int64, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	tag, err := getQ(ctx, r.pool).Exec(ctx, `DELETE FROM archives WHERE model_id = $1`, modelID)
	if err != nil {
		return 0, repository.MapPgError(err)
	}
	return tag.RowsAffected(), nil
}

func (r *archiveRepository) Count(ctx context.Context, f listing.Filter) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	return count(ctx, getQ(ctx, r.pool), "archives a", f, archiveFilters)
}

func (r *archiveRepository) Find(ctx context.Context, f listing.Filter, w listing.Window) ([]model.Archive, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	where, args, err := whereEq(f, archiveFilters, 1)
	if err != nil {
		return nil, err
	}
	window, wargs, err := windowArgs(w, len(args)+1)
	if err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		archiveSelect+where+` ORDER BY a.created_at DESC, a.id DESC`+window, append(args, wargs...)...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return collectArchives(rows, w.Limit)
}

func collectArchives(rows pgx.Rows, capacity int) ([]model.Archive, error) {
	defer rows.Close()
	out := make([]model.Archive, 0, capacity)
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.ArchiveRepository = (*archiveRepository)(nil)
