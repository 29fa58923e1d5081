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

const castingColumns = `id, company, contact_name, email, phone, project_type, description, budget,
	shoot_date, status, created_at, updated_at`

type castingRepository struct{ pool *pgxpool.Pool }

func NewCastingRepository(pool *pgxpool.Pool) repository.CastingRepository {
	return &castingRepository{pool: pool}
}

func scanCasting(row pgx.Row) (model.Casting, error) {
	var c model.Casting
	err := row.Scan(&c.ID, &c.Company, &c.ContactName, &c.Email, &c.Phone, &c.ProjectType, &c.Description,
		&c.Budget, &c.ShootDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *castingRepository) Create(ctx context.Context, c model.Casting) (model.Casting, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Casting{}, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = model.CastingPending
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO castings (id, company, contact_name, email, phone, project_type, description, budget, shoot_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+castingColumns,
		c.ID, c.Company, c.ContactName, c.Email, c.Phone, c.ProjectType, c.Description, c.Budget, c.ShootDate, c.Status,
	)
	out, err := scanCasting(row)
	if err != nil {
		return model.Casting{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *castingRepository) GetByID(ctx context.Context, id string) (model.Casting, error) {
	return r.get(ctx, `SELECT `+castingColumns+` FROM castings WHERE id = $1`, id)
}

func (r *castingRepository) GetForUpdate(ctx context.Context, id string) (model.Casting, error) {
	return r.get(ctx, `SELECT `+castingColumns+` FROM castings WHERE id = $1 FOR UPDATE`, id)
}

func (r *castingRepository) get(ctx context.Context, sql, id string) (model.Casting, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Casting{}, err
	}
	out, err := scanCasting(getQ(ctx, r.pool).QueryRow(ctx, sql, id))
	if err != nil {
		return model.Casting{}, notFoundOr(err)
	}
	return out, nil
}

func (r *castingRepository) UpdateStatus(ctx context.Context, id string, status model.CastingStatus) (model.Casting, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Casting{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`UPDATE castings SET status = $2, updated_at = now() WHERE id = $1 RETURNING `+castingColumns,
		id, status,
	)
	out, err := scanCasting(row)
	if err != nil {
		return model.Casting{}, notFoundOr(err)
	}
	return out, nil
}

func (r *castingRepository) Delete(ctx context.Context, id string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	return deleteByID(ctx, getQ(ctx, r.pool), "castings", id)
}

func (r *castingRepository) Count(ctx context.Context, f listing.Filter) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	return count(ctx, getQ(ctx, r.pool), "castings", f, statusFilters)
}

func (r *castingRepository) Find(ctx context.Context, f listing.Filter, w listing.Window) ([]model.Casting, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	where, args, err := whereEq(f, statusFilters, 1)
	if err != nil {
		return nil, err
	}
	window, wargs, err := windowArgs(w, len(args)+1)
	if err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+castingColumns+` FROM castings`+where+newestFirst+window, append(args, wargs...)...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.Casting, 0, w.Limit)
	for rows.Next() {
		c, err := scanCasting(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.CastingRepository = (*castingRepository)(nil)
