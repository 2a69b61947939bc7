package repository

import (
	"context"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const bloodPressureColumns = `id, user_id, entry_date, measurement_time, systolic, diastolic, pulse,
	position, arm, notes, created_at, updated_at`

type BloodPressureInput struct {
	EntryDate       models.Date `json:"entryDate" validate:"required"`
	MeasurementTime *time.Time  `json:"measurementTime"`
	Systolic        *int        `json:"systolic" validate:"required,gt=0,lt=400"`
	Diastolic       *int        `json:"diastolic" validate:"required,gt=0,lt=300"`
	Pulse           *int        `json:"pulse" validate:"omitempty,gt=0,lt=300"`
	Position        *string     `json:"position" validate:"omitempty,oneof=sitting standing lying"`
	Arm             *string     `json:"arm" validate:"omitempty,oneof=left right"`
	Notes           *string     `json:"notes"`
}

type BloodPressurePatch struct {
	Systolic  *int    `json:"systolic" validate:"omitempty,gt=0,lt=400"`
	Diastolic *int    `json:"diastolic" validate:"omitempty,gt=0,lt=300"`
	Pulse     *int    `json:"pulse" validate:"omitempty,gt=0,lt=300"`
	Notes     *string `json:"notes"`
}

type BloodPressureRepository struct {
	store
}

func NewBloodPressureRepository(db DBTX) *BloodPressureRepository {
	return &BloodPressureRepository{store{db: db}}
}

func scanBloodPressureEntry(row rowScanner) (*models.BloodPressureEntry, error) {
	var entry models.BloodPressureEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.MeasurementTime,
		&entry.Systolic,
		&entry.Diastolic,
		&entry.Pulse,
		&entry.Position,
		&entry.Arm,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *BloodPressureRepository) Create(ctx context.Context, userID int64, input BloodPressureInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO blood_pressure_entries (
			user_id, entry_date, measurement_time, systolic, diastolic, pulse, position, arm, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, 'sitting'), COALESCE($8, 'left'), $9)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		userID,
		input.EntryDate,
		input.MeasurementTime,
		input.Systolic,
		input.Diastolic,
		input.Pulse,
		input.Position,
		input.Arm,
		input.Notes,
	)
}

func (r *BloodPressureRepository) ListByUser(
	ctx context.Context,
	userID int64,
	dateRange DateRange,
) ([]models.BloodPressureEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + bloodPressureColumns + ` FROM blood_pressure_entries WHERE ` + where +
		` ORDER BY entry_date DESC, id DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBloodPressureEntry)
}

func (r *BloodPressureRepository) Update(ctx context.Context, id, userID int64, input BloodPressurePatch) error {
	var p patch
	setIfPresent(&p, "systolic", input.Systolic)
	setIfPresent(&p, "diastolic", input.Diastolic)
	setIfPresent(&p, "pulse", input.Pulse)
	setIfPresent(&p, "notes", input.Notes)
	return applyOwned(ctx, r.store, "blood_pressure_entries", id, userID, &p)
}

func (r *BloodPressureRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "blood_pressure_entries", id, userID)
}
