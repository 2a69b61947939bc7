package repository

import (
	"context"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const saunaColumns = `id, user_id, entry_date, sauna_type, duration, temperature, rounds, cold_plunge,
	cold_duration, notes, created_at, updated_at`

type SaunaEntryInput struct {
	EntryDate    models.Date `json:"entryDate" validate:"required"`
	SaunaType    *string     `json:"saunaType" validate:"omitempty,oneof=finnish infrared steam bio"`
	Duration     *int        `json:"duration" validate:"required,gt=0,lte=600"`
	Temperature  *int        `json:"temperature" validate:"omitempty,gte=0,lte=150"`
	Rounds       *int        `json:"rounds" validate:"omitempty,gt=0,lte=50"`
	ColdPlunge   *bool       `json:"coldPlunge"`
	ColdDuration *int        `json:"coldDuration" validate:"omitempty,gte=0"`
	Notes        *string     `json:"notes"`
}

type SaunaEntryPatch struct {
	Duration    *int    `json:"duration" validate:"omitempty,gt=0,lte=600"`
	Temperature *int    `json:"temperature" validate:"omitempty,gte=0,lte=150"`
	Rounds      *int    `json:"rounds" validate:"omitempty,gt=0,lte=50"`
	ColdPlunge  *bool   `json:"coldPlunge"`
	Notes       *string `json:"notes"`
}

type SaunaRepository struct {
	store
}

func NewSaunaRepository(db DBTX) *SaunaRepository {
	return &SaunaRepository{store{db: db}}
}

func scanSaunaEntry(row rowScanner) (*models.SaunaEntry, error) {
	var entry models.SaunaEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.SaunaType,
		&entry.Duration,
		&entry.Temperature,
		&entry.Rounds,
		&entry.ColdPlunge,
		&entry.ColdDuration,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *SaunaRepository) Create(ctx context.Context, userID int64, input SaunaEntryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO sauna_entries (
			user_id, entry_date, sauna_type, duration, temperature, rounds, cold_plunge, cold_duration, notes
		)
		VALUES ($1, $2, COALESCE($3, 'finnish'), $4, $5, COALESCE($6, 1), COALESCE($7, FALSE), $8, $9)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		userID,
		input.EntryDate,
		input.SaunaType,
		input.Duration,
		input.Temperature,
		input.Rounds,
		input.ColdPlunge,
		input.ColdDuration,
		input.Notes,
	)
}

func (r *SaunaRepository) ListByUser(ctx context.Context, userID int64, dateRange DateRange) ([]models.SaunaEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + saunaColumns + ` FROM sauna_entries WHERE ` + where +
		` ORDER BY entry_date DESC, id DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSaunaEntry)
}

func (r *SaunaRepository) Update(ctx context.Context, id, userID int64, input SaunaEntryPatch) error {
	var p patch
	setIfPresent(&p, "duration", input.Duration)
	setIfPresent(&p, "temperature", input.Temperature)
	setIfPresent(&p, "rounds", input.Rounds)
	setIfPresent(&p, "cold_plunge", input.ColdPlunge)
	setIfPresent(&p, "notes", input.Notes)
	return applyOwned(ctx, r.store, "sauna_entries", id, userID, &p)
}

func (r *SaunaRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "sauna_entries", id, userID)
}
