package repository

import (
	"context"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const nutritionColumns = `id, user_id, entry_date, meal_type, meal_time, description, calories, protein,
	carbs, fat, fiber, sugar, notes, created_at, updated_at`

type NutritionEntryInput struct {
	EntryDate   models.Date    `json:"entryDate" validate:"required"`
	MealType    *string        `json:"mealType" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	MealTime    *time.Time     `json:"mealTime"`
	Description *string        `json:"description"`
	Calories    *int           `json:"calories" validate:"omitempty,gte=0"`
	Protein     *models.Number `json:"protein" validate:"omitempty,gte=0"`
	Carbs       *models.Number `json:"carbs" validate:"omitempty,gte=0"`
	Fat         *models.Number `json:"fat" validate:"omitempty,gte=0"`
	Fiber       *models.Number `json:"fiber" validate:"omitempty,gte=0"`
	Sugar       *models.Number `json:"sugar" validate:"omitempty,gte=0"`
	Notes       *string        `json:"notes"`
}

type NutritionEntryPatch struct {
	Description *string        `json:"description"`
	Calories    *int           `json:"calories" validate:"omitempty,gte=0"`
	Protein     *models.Number `json:"protein" validate:"omitempty,gte=0"`
	Carbs       *models.Number `json:"carbs" validate:"omitempty,gte=0"`
	Fat         *models.Number `json:"fat" validate:"omitempty,gte=0"`
	Notes       *string        `json:"notes"`
}

type NutritionRepository struct {
	store
}

func NewNutritionRepository(db DBTX) *NutritionRepository {
	return &NutritionRepository{store{db: db}}
}

func scanNutritionEntry(row rowScanner) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryDate,
		&entry.MealType,
		&entry.MealTime,
		&entry.Description,
		&entry.Calories,
		&entry.Protein,
		&entry.Carbs,
		&entry.Fat,
		&entry.Fiber,
		&entry.Sugar,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *NutritionRepository) Create(ctx context.Context, userID int64, input NutritionEntryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO nutrition_entries (
			user_id, entry_date, meal_type, meal_time, description, calories, protein,
			carbs, fat, fiber, sugar, notes
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
		input.MealType,
		input.MealTime,
		input.Description,
		input.Calories,
		input.Protein.Float64(),
		input.Carbs.Float64(),
		input.Fat.Float64(),
		input.Fiber.Float64(),
		input.Sugar.Float64(),
		input.Notes,
	)
}

// ListByUser returns every meal in the range, newest day first.
func (r *NutritionRepository) ListByUser(
	ctx context.Context,
	userID int64,
	dateRange DateRange,
) ([]models.NutritionEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + nutritionColumns + ` FROM nutrition_entries WHERE ` + where +
		` ORDER BY entry_date DESC, id DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanNutritionEntry)
}

// ListByDate returns the meals of one day, latest meal first.
func (r *NutritionRepository) ListByDate(
	ctx context.Context,
	userID int64,
	date models.Date,
) ([]models.NutritionEntry, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + nutritionColumns + ` FROM nutrition_entries
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY meal_time DESC NULLS LAST, id DESC`
	rows, err := db.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanNutritionEntry)
}

func (r *NutritionRepository) Update(ctx context.Context, id, userID int64, input NutritionEntryPatch) error {
	var p patch
	setIfPresent(&p, "description", input.Description)
	setIfPresent(&p, "calories", input.Calories)
	setIfPresent(&p, "protein", input.Protein)
	setIfPresent(&p, "carbs", input.Carbs)
	setIfPresent(&p, "fat", input.Fat)
	setIfPresent(&p, "notes", input.Notes)
	return applyOwned(ctx, r.store, "nutrition_entries", id, userID, &p)
}

func (r *NutritionRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "nutrition_entries", id, userID)
}
