package repository

import (
	"context"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const goalColumns = `id, user_id, goal_type, target_value, current_value, start_value, unit, start_date,
	target_date, is_active, is_completed, completed_at, notes, created_at, updated_at`

type GoalInput struct {
	GoalType     string         `json:"goalType" validate:"required,oneof=weight water sleep training calories steps body_fat"`
	TargetValue  *models.Number `json:"targetValue" validate:"required"`
	StartValue   *models.Number `json:"startValue"`
	CurrentValue *models.Number `json:"currentValue"`
	Unit         string         `json:"unit" validate:"required,max=20"`
	StartDate    models.Date    `json:"startDate" validate:"required"`
	TargetDate   *models.Date   `json:"targetDate"`
	Notes        *string        `json:"notes"`
}

type GoalPatch struct {
	TargetValue  *models.Number `json:"targetValue"`
	CurrentValue *models.Number `json:"currentValue"`
	TargetDate   *models.Date   `json:"targetDate"`
	IsActive     *bool          `json:"isActive"`
	Notes        *string        `json:"notes"`
}

type GoalRepository struct {
	store
}

func NewGoalRepository(db DBTX) *GoalRepository {
	return &GoalRepository{store{db: db}}
}

func scanGoal(row rowScanner) (*models.UserGoal, error) {
	var goal models.UserGoal
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.GoalType,
		&goal.TargetValue,
		&goal.CurrentValue,
		&goal.StartValue,
		&goal.Unit,
		&goal.StartDate,
		&goal.TargetDate,
		&goal.IsActive,
		&goal.IsCompleted,
		&goal.CompletedAt,
		&goal.Notes,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) Create(ctx context.Context, userID int64, input GoalInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO user_goals (
			user_id, goal_type, target_value, start_value, current_value, unit, start_date, target_date, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		userID,
		input.GoalType,
		input.TargetValue.Float64(),
		input.StartValue.Float64(),
		input.CurrentValue.Float64(),
		input.Unit,
		input.StartDate,
		input.TargetDate,
		input.Notes,
	)
}

// ListByUser returns the user's goals, newest first. activeOnly hides deactivated goals.
func (r *GoalRepository) ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]models.UserGoal, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + goalColumns + ` FROM user_goals WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	if activeOnly {
		query = `SELECT ` + goalColumns + ` FROM user_goals WHERE user_id = $1 AND is_active = TRUE
			ORDER BY created_at DESC, id DESC`
	}
	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanGoal)
}

func (r *GoalRepository) GetByID(ctx context.Context, id, userID int64) (*models.UserGoal, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + goalColumns + ` FROM user_goals WHERE id = $1 AND user_id = $2`
	return queryOne(db.QueryRow(ctx, query, id, userID), scanGoal)
}

func (r *GoalRepository) Update(ctx context.Context, id, userID int64, input GoalPatch) error {
	var p patch
	setIfPresent(&p, "target_value", input.TargetValue)
	setIfPresent(&p, "current_value", input.CurrentValue)
	setIfPresent(&p, "target_date", input.TargetDate)
	setIfPresent(&p, "is_active", input.IsActive)
	setIfPresent(&p, "notes", input.Notes)
	return applyOwned(ctx, r.store, "user_goals", id, userID, &p)
}

func (r *GoalRepository) Complete(ctx context.Context, id, userID int64) error {
	var p patch
	p.set("is_completed", true)
	p.setRaw("completed_at = NOW()")
	return applyOwned(ctx, r.store, "user_goals", id, userID, &p)
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID int64) error {
	return deleteOwned(ctx, r.store, "user_goals", id, userID)
}
