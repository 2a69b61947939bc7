package repository

import (
	"context"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const bodyColumns = `id, user_id, entry_date, weight, body_fat, visceral_fat, muscle_mass, bone_mass,
	body_water, bmi, bmr, metabolic_age, notes, created_at, updated_at`

type BodyEntryInput struct {
	EntryDate    models.Date    `json:"entryDate" validate:"required"`
	Weight       *models.Number `json:"weight" validate:"omitempty,gt=0,lt=1000"`
	BodyFat      *models.Number `json:"bodyFat" validate:"omitempty,gte=0,lte=100"`
	VisceralFat  *int           `json:"visceralFat" validate:"omitempty,gte=0,lte=100"`
	MuscleMass   *models.Number `json:"muscleMass" validate:"omitempty,gte=0,lt=1000"`
	BoneMass     *models.Number `json:"boneMass" validate:"omitempty,gte=0,lt=100"`
	BodyWater    *models.Number `json:"bodyWater" validate:"omitempty,gte=0,lte=100"`
	BMI          *models.Number `json:"bmi" validate:"omitempty,gt=0,lt=1000"`
	BMR          *int           `json:"bmr" validate:"omitempty,gt=0"`
	MetabolicAge *int           `json:"metabolicAge" validate:"omitempty,gt=0,lt=200"`
	Notes        *string        `json:"notes"`
}

type BodyEntryPatch struct {
	Weight      *models.Number `json:"weight" validate:"omitempty,gt=0,lt=1000"`
	BodyFat     *models.Number `json:"bodyFat" validate:"omitempty,gte=0,lte=100"`
	VisceralFat *int           `json:"visceralFat" validate:"omitempty,gte=0,lte=100"`
	MuscleMass  *models.Number `json:"muscleMass" validate:"omitempty,gte=0,lt=1000"`
	BoneMass    *models.Number `json:"boneMass" validate:"omitempty,gte=0,lt=100"`
	BodyWater   *models.Number `json:"bodyWater" validate:"omitempty,gte=0,lte=100"`
	Notes       *string        `json:"notes"`
}

type BodyRepository struct {
	store
}

func NewBodyRepository(db DBTX) *BodyRepository {
	return &BodyRepository{store{db: db}}
}

func scanBodyEntry(row rowScanner) (*models.BodyEntry, error) {
	var entry models.BodyEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.Weight,
		&entry.BodyFat,
		&entry.VisceralFat,
		&entry.MuscleMass,
		&entry.BoneMass,
		&entry.BodyWater,
		&entry.BMI,
		&entry.BMR,
		&entry.MetabolicAge,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *BodyRepository) Create(ctx context.Context, userID int64, input BodyEntryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO body_entries (
			user_id, entry_date, weight, body_fat, visceral_fat, muscle_mass, bone_mass,
			body_water, bmi, bmr, metabolic_age, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		userID,
		input.EntryDate,
		input.Weight.Float64(),
		input.BodyFat.Float64(),
		input.VisceralFat,
		input.MuscleMass.Float64(),
		input.BoneMass.Float64(),
		input.BodyWater.Float64(),
		input.BMI.Float64(),
		input.BMR,
		input.MetabolicAge,
		input.Notes,
	)
}

func (r *BodyRepository) ListByUser(ctx context.Context, userID int64, dateRange DateRange) ([]models.BodyEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + bodyColumns + ` FROM body_entries WHERE ` + where +
		` ORDER BY entry_date DESC, id DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBodyEntry)
}

func (r *BodyRepository) GetByUserAndDate(ctx context.Context, userID int64, date models.Date) (*models.BodyEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + bodyColumns + ` FROM body_entries
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY id DESC
		LIMIT 1`
	return queryOne(db.QueryRow(ctx, query, userID, date), scanBodyEntry)
}

func (r *BodyRepository) Update(ctx context.Context, id, userID int64, input BodyEntryPatch) error {
	var p patch
	setIfPresent(&p, "weight", input.Weight)
	setIfPresent(&p, "body_fat", input.BodyFat)
	setIfPresent(&p, "visceral_fat", input.VisceralFat)
	setIfPresent(&p, "muscle_mass", input.MuscleMass)
	setIfPresent(&p, "bone_mass", input.BoneMass)
	setIfPresent(&p, "body_water", input.BodyWater)
	setIfPresent(&p, "notes", input.Notes)
	return applyOwned(ctx, r.store, "body_entries", id, userID, &p)
}

func (r *BodyRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "body_entries", id, userID)
}
