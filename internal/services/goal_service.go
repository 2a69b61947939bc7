package services

import (
	"context"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

// GoalProgress returns how far a goal has moved from its start toward its
// target, in percent. Weight and body fat goals count downward.
func GoalProgress(goal models.UserGoal) float64 {
	if goal.StartValue == nil || goal.CurrentValue == nil || goal.TargetValue == nil {
		return 0
	}
	start, current, target := *goal.StartValue, *goal.CurrentValue, *goal.TargetValue

	var progress float64
	if isInvertedGoal(goal.GoalType) {
		if start <= target {
			return 0
		}
		progress = (start - current) / (start - target) * 100
	} else {
		if target <= start {
			return 0
		}
		progress = (current - start) / (target - start) * 100
	}
	return clamp(progress, 0, 100)
}

func isInvertedGoal(goalType string) bool {
	return goalType == models.GoalWeight || goalType == models.GoalBodyFat
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func withProgress(goal models.UserGoal) models.GoalWithProgress {
	return models.GoalWithProgress{UserGoal: goal, Progress: GoalProgress(goal)}
}

type goalStore interface {
	Create(ctx context.Context, userID int64, input repository.GoalInput) (int64, error)
	ListByUser(ctx context.Context, userID int64, activeOnly bool) ([]models.UserGoal, error)
	GetByID(ctx context.Context, id, userID int64) (*models.UserGoal, error)
	Update(ctx context.Context, id, userID int64, input repository.GoalPatch) error
	Complete(ctx context.Context, id, userID int64) error
	Delete(ctx context.Context, id, userID int64) error
}

type GoalService struct {
	goalRepo goalStore
}

func NewGoalService(goalRepo goalStore) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

type GoalProgressResult struct {
	ID       int64   `json:"id"`
	Progress float64 `json:"progress"`
}

func (s *GoalService) Create(ctx context.Context, userID int64, input repository.GoalInput) (int64, error) {
	return s.goalRepo.Create(ctx, userID, input)
}

func (s *GoalService) List(ctx context.Context, userID int64, activeOnly bool) ([]models.GoalWithProgress, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]models.GoalWithProgress, len(goals))
	for i, goal := range goals {
		result[i] = withProgress(goal)
	}
	return result, nil
}

// Get returns nil when the goal does not exist or belongs to someone else.
func (s *GoalService) Get(ctx context.Context, id, userID int64) (*models.GoalWithProgress, error) {
	goal, err := s.goalRepo.GetByID(ctx, id, userID)
	if err != nil || goal == nil {
		return nil, err
	}
	result := withProgress(*goal)
	return &result, nil
}

func (s *GoalService) Progress(ctx context.Context, id, userID int64) (*GoalProgressResult, error) {
	goal, err := s.Get(ctx, id, userID)
	if err != nil || goal == nil {
		return nil, err
	}
	return &GoalProgressResult{ID: goal.ID, Progress: goal.Progress}, nil
}

func (s *GoalService) Update(ctx context.Context, id, userID int64, input repository.GoalPatch) error {
	return s.goalRepo.Update(ctx, id, userID, input)
}

func (s *GoalService) Complete(ctx context.Context, id, userID int64) error {
	return s.goalRepo.Complete(ctx, id, userID)
}

func (s *GoalService) Delete(ctx context.Context, id, userID int64) error {
	return s.goalRepo.Delete(ctx, id, userID)
}
