package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const trainingColumns = `id, user_id, entry_date, workout_type, start_time, duration, calories_burned,
	avg_heart_rate, max_heart_rate, distance, steps, intensity, exercises, notes, created_at, updated_at`

type TrainingEntryInput struct {
	EntryDate      models.Date     `json:"entryDate" validate:"required"`
	WorkoutType    string          `json:"workoutType" validate:"required,max=100"`
	StartTime      *time.Time      `json:"startTime"`
	Duration       *int            `json:"duration" validate:"omitempty,gte=0,lte=1440"`
	CaloriesBurned *int            `json:"caloriesBurned" validate:"omitempty,gte=0"`
	AvgHeartRate   *int            `json:"avgHeartRate" validate:"omitempty,gt=0,lt=300"`
	MaxHeartRate   *int            `json:"maxHeartRate" validate:"omitempty,gt=0,lt=300"`
	Distance       *models.Number  `json:"distance" validate:"omitempty,gte=0"`
	Steps          *int            `json:"steps" validate:"omitempty,gte=0"`
	Intensity      *string         `json:"intensity" validate:"omitempty,oneof=light moderate intense maximum"`
	Exercises      json.RawMessage `json:"exercises" validate:"omitempty,json_array"`
	Notes          *string         `json:"notes"`
}

type TrainingEntryPatch struct {
	WorkoutType    *string `json:"workoutType" validate:"omitempty,min=1,max=100"`
	Duration       *int    `json:"duration" validate:"omitempty,gte=0,lte=1440"`
	CaloriesBurned *int    `json:"caloriesBurned" validate:"omitempty,gte=0"`
	Intensity      *string `json:"intensity" validate:"omitempty,oneof=light moderate intense maximum"`
	Notes          *string `json:"notes"`
}

type TrainingRepository struct {
	store
}

func NewTrainingRepository(db DBTX) *TrainingRepository {
	return &TrainingRepository{store{db: db}}
}

func scanTrainingEntry(row rowScanner) (*models.TrainingEntry, error) {
	var entry models.TrainingEntry
	var exercises []byte
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.WorkoutType,
		&entry.StartTime,
		&entry.Duration,
		&entry.CaloriesBurned,
		&entry.AvgHeartRate,
		&entry.MaxHeartRate,
		&entry.Distance,
		&entry.Steps,
		&entry.Intensity,
		&exercises,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(exercises) > 0 {
		entry.Exercises = json.RawMessage(exercises)
	}
	return &entry, nil
}

// jsonArg maps an absent payload to SQL NULL.
func jsonArg(raw json.RawMessage) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return []byte(raw)
}

func (r *TrainingRepository) Create(ctx context.Context, userID int64, input TrainingEntryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO training_entries (
			user_id, entry_date, workout_type, start_time, duration, calories_burned,
			avg_heart_rate, max_heart_rate, distance, steps, intensity, exercises, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		userID,
		input.EntryDate,
		input.WorkoutType,
		input.StartTime,
		input.Duration,
		input.CaloriesBurned,
		input.AvgHeartRate,
		input.MaxHeartRate,
		input.Distance.Float64(),
		input.Steps,
		input.Intensity,
		jsonArg(input.Exercises),
		input.Notes,
	)
}

func (r *TrainingRepository) ListByUser(
	ctx context.Context,
	userID int64,
	dateRange DateRange,
) ([]models.TrainingEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + trainingColumns + ` FROM training_entries WHERE ` + where +
		` ORDER BY entry_date DESC, id DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanTrainingEntry)
}

func (r *TrainingRepository) Update(ctx context.Context, id, userID int64, input TrainingEntryPatch) error {
	var p patch
	setIfPresent(&p, "workout_type", input.WorkoutType)
	setIfPresent(&p, "duration", input.Duration)
	setIfPresent(&p, "calories_burned", input.CaloriesBurned)
	setIfPresent(&p, "intensity", input.Intensity)
	setIfPresent(&p, "notes", input.Notes)
	return applyOwned(ctx, r.store, "training_entries", id, userID, &p)
}

func (r *TrainingRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "training_entries", id, userID)
}
