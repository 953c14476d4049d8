package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-site-api/internal/domain"
	"content-site-api/internal/metrics"
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// nullTime maps the zero time to NULL so the column default applies.
func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// nullString maps an empty string to NULL so COALESCE keeps the stored value.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// textArray guarantees a non-nil slice for NOT NULL TEXT[] columns.
func textArray(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// deleteByID removes a single row and maps a zero row count to domain.ErrNotFound.
func deleteByID(ctx context.Context, pool *pgxpool.Pool, table, id string) error {
	defer observe(table, "delete")()

	tag, err := pool.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// observe starts timing a store operation; call the returned func when it finishes.
func observe(table, operation string) func() {
	timer := metrics.NewTimer()
	return func() {
		timer.ObserveDuration(metrics.StoreOperationDuration.WithLabelValues(table, operation))
	}
}
