package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

// ErrStoreUnavailable is returned by every repository call when no database is configured.
var ErrStoreUnavailable = errors.New("database not available")

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// store is embedded by every repository. A nil db means the process runs without a database.
type store struct {
	db DBTX
}

func (s store) conn() (DBTX, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	return s.db, nil
}

// DateRange filters on entry_date with inclusive bounds. It only applies when both ends are set.
type DateRange struct {
	Start *models.Date
	End   *models.Date
}

func (r DateRange) Bounded() bool {
	return r.Start != nil && r.End != nil && !r.Start.IsZero() && !r.End.IsZero()
}

// userScope builds the WHERE clause shared by per-user list queries.
func userScope(userID int64, r DateRange) (string, []any) {
	args := []any{userID}
	where := []string{"user_id = $1"}
	if r.Bounded() {
		args = append(args, *r.Start, *r.End)
		where = append(where, "entry_date BETWEEN $2 AND $3")
	}
	return strings.Join(where, " AND "), args
}

func collect[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// queryOne returns nil, nil when no row matches.
func queryOne[T any](row pgx.Row, scan func(rowScanner) (*T, error)) (*T, error) {
	item, err := scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func insertReturningID(ctx context.Context, db DBTX, query string, args ...any) (int64, error) {
	var id int64
	if err := db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func deleteOwned(ctx context.Context, s store, table string, id, userID int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND user_id = $2", table)
	_, err = db.Exec(ctx, query, id, userID)
	return err
}

func deleteByID(ctx context.Context, s store, table string, id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	_, err = db.Exec(ctx, query, id)
	return err
}

// IsUniqueViolation reports whether err is a Postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
