package repository

import (
	"context"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const sleepColumns = `id, user_id, entry_date, bed_time, wake_time, total_sleep, deep_sleep, rem_sleep,
	light_sleep, awake_time, sleep_quality, sleep_score, avg_heart_rate, min_heart_rate, notes,
	created_at, updated_at`

type SleepEntryInput struct {
	EntryDate    models.Date `json:"entryDate" validate:"required"`
	BedTime      *time.Time  `json:"bedTime"`
	WakeTime     *time.Time  `json:"wakeTime"`
	TotalSleep   *int        `json:"totalSleep" validate:"omitempty,gte=0,lte=1440"`
	DeepSleep    *int        `json:"deepSleep" validate:"omitempty,gte=0,lte=1440"`
	RemSleep     *int        `json:"remSleep" validate:"omitempty,gte=0,lte=1440"`
	LightSleep   *int        `json:"lightSleep" validate:"omitempty,gte=0,lte=1440"`
	AwakeTime    *int        `json:"awakeTime" validate:"omitempty,gte=0,lte=1440"`
	SleepQuality *string     `json:"sleepQuality" validate:"omitempty,oneof=poor fair good excellent"`
	SleepScore   *int        `json:"sleepScore" validate:"omitempty,gte=0,lte=100"`
	AvgHeartRate *int        `json:"avgHeartRate" validate:"omitempty,gt=0,lt=300"`
	MinHeartRate *int        `json:"minHeartRate" validate:"omitempty,gt=0,lt=300"`
	Notes        *string     `json:"notes"`
}

type SleepEntryPatch struct {
	TotalSleep   *int    `json:"totalSleep" validate:"omitempty,gte=0,lte=1440"`
	DeepSleep    *int    `json:"deepSleep" validate:"omitempty,gte=0,lte=1440"`
	RemSleep     *int    `json:"remSleep" validate:"omitempty,gte=0,lte=1440"`
	LightSleep   *int    `json:"lightSleep" validate:"omitempty,gte=0,lte=1440"`
	SleepQuality *string `json:"sleepQuality" validate:"omitempty,oneof=poor fair good excellent"`
	SleepScore   *int    `json:"sleepScore" validate:"omitempty,gte=0,lte=100"`
	Notes        *string `json:"notes"`
}

type SleepRepository struct {
	store
}

func NewSleepRepository(db DBTX) *SleepRepository {
	return &SleepRepository{store{db: db}}
}

func scanSleepEntry(row rowScanner) (*models.SleepEntry, error) {
	var entry models.SleepEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.BedTime,
		&entry.WakeTime,
		&entry.TotalSleep,
		&entry.DeepSleep,
		&entry.RemSleep,
		&entry.LightSleep,
		&entry.AwakeTime,
		&entry.SleepQuality,
		&entry.SleepScore,
		&entry.AvgHeartRate,
		&entry.MinHeartRate,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *SleepRepository) Create(ctx context.Context, userID int64, input SleepEntryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO sleep_entries (
			user_id, entry_date, bed_time, wake_time, total_sleep, deep_sleep, rem_sleep,
			light_sleep, awake_time, sleep_quality, sleep_score, avg_heart_rate, min_heart_rate, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		userID,
		input.EntryDate,
		input.BedTime,
		input.WakeTime,
		input.TotalSleep,
		input.DeepSleep,
		input.RemSleep,
		input.LightSleep,
		input.AwakeTime,
		input.SleepQuality,
		input.SleepScore,
		input.AvgHeartRate,
		input.MinHeartRate,
		input.Notes,
	)
}

func (r *SleepRepository) ListByUser(
	ctx context.Context,
	userID int64,
	dateRange DateRange,
) ([]models.SleepEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + sleepColumns + ` FROM sleep_entries WHERE ` + where +
		` ORDER BY entry_date DESC, id DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanSleepEntry)
}

func (r *SleepRepository) GetByUserAndDate(
	ctx context.Context,
	userID int64,
	date models.Date,
) (*models.SleepEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + sleepColumns + ` FROM sleep_entries
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY id DESC
		LIMIT 1`
	return queryOne(db.QueryRow(ctx, query, userID, date), scanSleepEntry)
}

func (r *SleepRepository) Update(ctx context.Context, id, userID int64, input SleepEntryPatch) error {
	var p patch
	setIfPresent(&p, "total_sleep", input.TotalSleep)
	setIfPresent(&p, "deep_sleep", input.DeepSleep)
	setIfPresent(&p, "rem_sleep", input.RemSleep)
	setIfPresent(&p, "light_sleep", input.LightSleep)
	setIfPresent(&p, "sleep_quality", input.SleepQuality)
	setIfPresent(&p, "sleep_score", input.SleepScore)
	setIfPresent(&p, "notes", input.Notes)
	return applyOwned(ctx, r.store, "sleep_entries", id, userID, &p)
}

func (r *SleepRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "sleep_entries", id, userID)
}
