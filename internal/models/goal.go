package models

import "time"

const (
	GoalWeight   = "weight"
	GoalWater    = "water"
	GoalSleep    = "sleep"
	GoalTraining = "training"
	GoalCalories = "calories"
	GoalSteps    = "steps"
	GoalBodyFat  = "body_fat"
)

type UserGoal struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	GoalType     string     `json:"goalType"`
	TargetValue  *float64   `json:"targetValue"`
	CurrentValue *float64   `json:"currentValue"`
	StartValue   *float64   `json:"startValue"`
	Unit         string     `json:"unit"`
	StartDate    Date       `json:"startDate"`
	TargetDate   *Date      `json:"targetDate"`
	IsActive     bool       `json:"isActive"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt"`
	Notes        *string    `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// GoalWithProgress is the API shape of a goal: the stored row plus its derived progress.
type GoalWithProgress struct {
	UserGoal
	Progress float64 `json:"progress"`
}
