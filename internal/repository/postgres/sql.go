package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maxviazov/talent-agency-service/internal/listing"
	"github.com/maxviazov/talent-agency-service/internal/repository"
)

// whereEq renders the optional equality filter against a whitelist of columns.
// Query-string field names never reach SQL directly.
func whereEq(f listing.Filter, columns map[string]string, firstArg int) (string, []any, error) {
	if f.IsZero() {
		return "", nil, nil
	}
	col, ok := columns[f.Field]
	if !ok {
		return "", nil, fmt.Errorf("unsupported filter field %q", f.Field)
	}
	return fmt.Sprintf(" WHERE %s = $%d", col, firstArg), []any{f.Value}, nil
}

// windowArgs renders LIMIT/OFFSET placeholders starting at the given position.
// A negative offset is an overflowed page upstream and is refused, never read as page 1.
func windowArgs(w listing.Window, firstArg int) (string, []any, error) {
	if w.Offset < 0 {
		return "", nil, fmt.Errorf("invalid list window: negative offset %d", w.Offset)
	}
	limit := w.Limit
	if limit <= 0 {
		limit = listing.DefaultLimit
	}
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", firstArg, firstArg+1), []any{limit, w.Offset}, nil
}

// newestFirst is the stable ordering every list shares.
const newestFirst = " ORDER BY created_at DESC, id DESC"

// nonNil keeps array columns NOT NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// count is the shared Count implementation for single-table lists.
func count(ctx context.Context, exec q, table string, f listing.Filter, columns map[string]string) (int, error) {
	where, args, err := whereEq(f, columns, 1)
	if err != nil {
		return 0, err
	}
	var n int
	if err := exec.QueryRow(ctx, "SELECT COUNT(*) FROM "+table+where, args...).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

// deleteByID deletes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, exec q, table, id string) error {
	tag, err := exec.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return repository.MapPgError(err)
}
