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

const modelColumns = `id, name, slug, category, nationality, profile_image, images, bio, height,
	measurements, instagram, created_at, updated_at`

var modelFilters = map[string]string{listing.FieldCategory: "category"}

type modelRepository struct{ pool *pgxpool.Pool }

func NewModelRepository(pool *pgxpool.Pool) repository.ModelRepository {
	return &modelRepository{pool: pool}
}

func scanModel(row pgx.Row) (model.Model, error) {
	var m model.Model
	err := row.Scan(&m.ID, &m.Name, &m.Slug, &m.Category, &m.Nationality, &m.ProfileImage, &m.Images,
		&m.Bio, &m.Height, &m.Measurements, &m.Instagram, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *modelRepository) Create(ctx context.Context, m model.Model) (model.Model, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Model{}, err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO models (id, name, slug, category, nationality, profile_image, images, bio, height, measurements, instagram)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+modelColumns,
		m.ID, m.Name, m.Slug, m.Category, m.Nationality, m.ProfileImage, nonNil(m.Images), m.Bio, m.Height,
		m.Measurements, m.Instagram,
	)
	out, err := scanModel(row)
	if err != nil {
		return model.Model{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *modelRepository) GetByID(ctx context.Context, id string) (model.Model, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Model{}, err
	}
	out, err := scanModel(getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+modelColumns+` FROM models WHERE id = $1`, id))
	if err != nil {
		return model.Model{}, notFoundOr(err)
	}
	return out, nil
}

func (r *modelRepository) GetBySlug(ctx context.Context, slug string) (model.Model, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Model{}, err
	}
	out, err := scanModel(getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+modelColumns+` FROM models WHERE slug = $1`, slug))
	if err != nil {
		return model.Model{}, notFoundOr(err)
	}
	return out, nil
}

// Update overwrites every mutable column; the service merges partial input beforehand.
func (r *modelRepository) Update(ctx context.Context, m model.Model) (model.Model, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Model{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`UPDATE models
		 SET name = $2, slug = $3, category = $4, nationality = $5, profile_image = $6, images = $7,
		     bio = $8, height = $9, measurements = $10, instagram = $11, updated_at = now()
		 WHERE id = $1
		 RETURNING `+modelColumns,
		m.ID, m.Name, m.Slug, m.Category, m.Nationality, m.ProfileImage, nonNil(m.Images), m.Bio, m.Height,
		m.Measurements, m.Instagram,
	)
	out, err := scanModel(row)
	if err != nil {
		return model.Model{}, notFoundOr(err)
	}
	return out, nil
}

func (r *modelRepository) Delete(ctx context.Context, id string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	return deleteByID(ctx, getQ(ctx, r.pool), "models", id)
}

// Exists performs a lightweight check to see if a model with the given ID exists.
func (r *modelRepository) Exists(ctx context.Context, id string) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	err := getQ(ctx, r.pool).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM models WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

func (r *modelRepository) Count(ctx context.Context, f listing.Filter) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	return count(ctx, getQ(ctx, r.pool), "models", f, modelFilters)
}

func (r *modelRepository) Find(ctx context.Context, f listing.Filter, w listing.Window) ([]model.Model, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	where, args, err := whereEq(f, modelFilters, 1)
	if err != nil {
		return nil, err
	}
	window, wargs, err := windowArgs(w, len(args)+1)
	if err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx, `SELECT `+modelColumns+` FROM models`+where+newestFirst+window, append(args, wargs...)...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.Model, 0, w.Limit)
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.ModelRepository = (*modelRepository)(nil)
