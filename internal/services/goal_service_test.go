package services

import (
	"context"
	"testing"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

func floatPtr(v float64) *float64 {
	return &v
}

func goal(goalType string, start, target, current *float64) models.UserGoal {
	return models.UserGoal{GoalType: goalType, StartValue: start, TargetValue: target, CurrentValue: current}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		goal models.UserGoal
		want float64
	}{
		{"weight halfway", goal(models.GoalWeight, floatPtr(90), floatPtr(80), floatPtr(85)), 50},
		{"training halfway", goal(models.GoalTraining, floatPtr(0), floatPtr(4), floatPtr(2)), 50},
		{"weight wrong direction", goal(models.GoalWeight, floatPtr(80), floatPtr(90), floatPtr(85)), 0},
		{"body fat counts down", goal(models.GoalBodyFat, floatPtr(25), floatPtr(15), floatPtr(20)), 50},
		{"steps target below start", goal(models.GoalSteps, floatPtr(10000), floatPtr(8000), floatPtr(9000)), 0},
		{"target equals start", goal(models.GoalWater, floatPtr(2000), floatPtr(2000), floatPtr(2500)), 0},
		{"missing start", goal(models.GoalSleep, nil, floatPtr(8), floatPtr(7)), 0},
		{"missing current", goal(models.GoalSleep, floatPtr(6), floatPtr(8), nil), 0},
		{"overshoot clamps", goal(models.GoalCalories, floatPtr(1500), floatPtr(2000), floatPtr(2600)), 100},
		{"regression clamps", goal(models.GoalWeight, floatPtr(90), floatPtr(80), floatPtr(95)), 0},
		{"target reached", goal(models.GoalWeight, floatPtr(90), floatPtr(80), floatPtr(80)), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalProgress(tt.goal); got != tt.want {
				t.Fatalf("GoalProgress() = %v, want %v", got, tt.want)
			}
		})
	}
}

type stubGoalStore struct {
	goals map[int64]models.UserGoal
}

func (s *stubGoalStore) Create(context.Context, int64, repository.GoalInput) (int64, error) {
	return 1, nil
}

func (s *stubGoalStore) ListByUser(_ context.Context, userID int64, _ bool) ([]models.UserGoal, error) {
	var out []models.UserGoal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *stubGoalStore) GetByID(_ context.Context, id, userID int64) (*models.UserGoal, error) {
	g, ok := s.goals[id]
	if !ok || g.UserID != userID {
		return nil, nil
	}
	return &g, nil
}

func (s *stubGoalStore) Update(context.Context, int64, int64, repository.GoalPatch) error {
	return nil
}

func (s *stubGoalStore) Complete(context.Context, int64, int64) error {
	return nil
}

func (s *stubGoalStore) Delete(context.Context, int64, int64) error {
	return nil
}

func TestGoalServiceAttachesProgress(t *testing.T) {
	weight := goal(models.GoalWeight, floatPtr(90), floatPtr(80), floatPtr(85))
	weight.ID, weight.UserID = 3, 10
	service := NewGoalService(&stubGoalStore{goals: map[int64]models.UserGoal{3: weight}})
	ctx := context.Background()

	goals, err := service.List(ctx, 10, true)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(goals) != 1 || goals[0].Progress != 50 {
		t.Fatalf("expected one goal at 50%%, got %+v", goals)
	}

	progress, err := service.Progress(ctx, 3, 10)
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if progress == nil || progress.ID != 3 || progress.Progress != 50 {
		t.Fatalf("unexpected progress: %+v", progress)
	}

	foreign, err := service.Progress(ctx, 3, 11)
	if err != nil || foreign != nil {
		t.Fatalf("foreign goal should resolve to nil, got %+v (%v)", foreign, err)
	}
}
