package repository

import (
	"context"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const waterColumns = `id, user_id, entry_date, entry_time, amount, created_at`

type WaterEntryInput struct {
	EntryDate models.Date `json:"entryDate" validate:"required"`
	Amount    *int        `json:"amount" validate:"required,gt=0,lte=10000"`
	EntryTime *time.Time  `json:"entryTime"`
}

// WaterRepository is an append-only log. Entries are added and deleted, never updated.
type WaterRepository struct {
	store
}

func NewWaterRepository(db DBTX) *WaterRepository {
	return &WaterRepository{store{db: db}}
}

func scanWaterEntry(row rowScanner) (*models.WaterEntry, error) {
	var entry models.WaterEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.EntryTime,
		&entry.Amount,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WaterRepository) Add(ctx context.Context, userID int64, input WaterEntryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO water_entries (user_id, entry_date, entry_time, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return insertReturningID(ctx, db, query, userID, input.EntryDate, input.EntryTime, input.Amount)
}

func (r *WaterRepository) ListByDate(ctx context.Context, userID int64, date models.Date) ([]models.WaterEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + waterColumns + ` FROM water_entries
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY entry_time DESC NULLS LAST, id DESC`
	rows, err := db.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWaterEntry)
}

func (r *WaterRepository) ListByUser(ctx context.Context, userID int64, dateRange DateRange) ([]models.WaterEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + waterColumns + ` FROM water_entries WHERE ` + where +
		` ORDER BY entry_date DESC, id DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanWaterEntry)
}

// DailyTotal sums the logged amounts for one day. A day without entries totals 0.
func (r *WaterRepository) DailyTotal(ctx context.Context, userID int64, date models.Date) (int, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	var total int
	query := `SELECT COALESCE(SUM(amount), 0)::int FROM water_entries WHERE user_id = $1 AND entry_date = $2`
	if err := db.QueryRow(ctx, query, userID, date).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *WaterRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "water_entries", id, userID)
}
