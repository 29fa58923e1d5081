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

const applicationColumns = `id, name, email, phone, age, height, weight, instagram, portfolio, message,
	status, created_at, updated_at`

var statusFilters = map[string]string{listing.FieldStatus: "status"}

type applicationRepository struct{ pool *pgxpool.Pool }

func NewApplicationRepository(pool *pgxpool.Pool) repository.ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func scanApplication(row pgx.Row) (model.Application, error) {
	var a model.Application
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.Age, &a.Height, &a.Weight, &a.Instagram,
		&a.Portfolio, &a.Message, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *applicationRepository) Create(ctx context.Context, a model.Application) (model.Application, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Application{}, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = model.ApplicationPending
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO applications (id, name, email, phone, age, height, weight, instagram, portfolio, message, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+applicationColumns,
		a.ID, a.Name, a.Email, a.Phone, a.Age, a.Height, a.Weight, a.Instagram, nonNil(a.Portfolio), a.Message, a.Status,
	)
	out, err := scanApplication(row)
	if err != nil {
		return model.Application{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (model.Application, error) {
	return r.get(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
}

func (r *applicationRepository) GetForUpdate(ctx context.Context, id string) (model.Application, error) {
	return r.get(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1 FOR UPDATE`, id)
}

func (r *applicationRepository) get(ctx context.Context, sql, id string) (model.Application, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Application{}, err
	}
	out, err := scanApplication(getQ(ctx, r.pool).QueryRow(ctx, sql, id))
	if err != nil {
		return model.Application{}, notFoundOr(err)
	}
	return out, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) (model.Application, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Application{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1 RETURNING `+applicationColumns,
		id, status,
	)
	out, err := scanApplication(row)
	if err != nil {
		return model.Application{}, notFoundOr(err)
	}
	return out, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	return deleteByID(ctx, getQ(ctx, r.pool), "applications", id)
}

func (r *applicationRepository) Count(ctx context.Context, f listing.Filter) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	return count(ctx, getQ(ctx, r.pool), "applications", f, statusFilters)
}

func (r *applicationRepository) Find(ctx context.Context, f listing.Filter, w listing.Window) ([]model.Application, error) {
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
		`SELECT `+applicationColumns+` FROM applications`+where+newestFirst+window, append(args, wargs...)...)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.Application, 0, w.Limit)
	for rows.Next() {
		a, err := scanApplication(rows)
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

var _ repository.ApplicationRepository = (*applicationRepository)(nil)
