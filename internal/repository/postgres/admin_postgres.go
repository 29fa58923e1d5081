package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/talent-agency-service/internal/model"
	"github.com/maxviazov/talent-agency-service/internal/repository"
)

const adminColumns = `id, email, password_hash, name, created_at, updated_at`

type adminRepository struct{ pool *pgxpool.Pool }

func NewAdminRepository(pool *pgxpool.Pool) repository.AdminRepository {
	return &adminRepository{pool: pool}
}

func scanAdmin(row pgx.Row) (model.Admin, error) {
	var a model.Admin
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *adminRepository) Create(ctx context.Context, a model.Admin) (model.Admin, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Admin{}, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO admins (id, email, password_hash, name) VALUES ($1, $2, $3, $4) RETURNING `+adminColumns,
		a.ID, a.Email, a.PasswordHash, a.Name,
	)
	out, err := scanAdmin(row)
	if err != nil {
		return model.Admin{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (model.Admin, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Admin{}, err
	}
	out, err := scanAdmin(getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id))
	if err != nil {
		return model.Admin{}, notFoundOr(err)
	}
	return out, nil
}

// GetByEmail matches case-insensitively; emails are stored lower-cased.
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (model.Admin, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Admin{}, err
	}
	out, err := scanAdmin(getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE email = lower($1)`, email))
	if err != nil {
		return model.Admin{}, notFoundOr(err)
	}
	return out, nil
}

var _ repository.AdminRepository = (*adminRepository)(nil)
