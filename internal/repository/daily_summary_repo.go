package repository

import (
	"context"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const dailySummaryColumns = `id, user_id, entry_date, mood, energy_level, stress_level, goals_achieved,
	total_goals, gratitude, wins, challenges, tomorrow_focus, notes, created_at, updated_at`

type DailySummaryInput struct {
	EntryDate     models.Date `json:"entryDate" validate:"required"`
	Mood          *string     `json:"mood" validate:"omitempty,oneof=terrible bad okay good great"`
	EnergyLevel   *int        `json:"energyLevel" validate:"omitempty,gte=1,lte=10"`
	StressLevel   *int        `json:"stressLevel" validate:"omitempty,gte=1,lte=10"`
	GoalsAchieved *int        `json:"goalsAchieved" validate:"omitempty,gte=0"`
	TotalGoals    *int        `json:"totalGoals" validate:"omitempty,gte=0"`
	Gratitude     *string     `json:"gratitude"`
	Wins          *string     `json:"wins"`
	Challenges    *string     `json:"challenges"`
	TomorrowFocus *string     `json:"tomorrowFocus"`
	Notes         *string     `json:"notes"`
}

type DailySummaryRepository struct {
	store
}

func NewDailySummaryRepository(db DBTX) *DailySummaryRepository {
	return &DailySummaryRepository{store{db: db}}
}

func scanDailySummary(row rowScanner) (*models.DailySummary, error) {
	var summary models.DailySummary
	err := row.Scan(
		&summary.ID,
		&summary.UserID,
		&summary.EntryDate,
		&summary.Mood,
		&summary.EnergyLevel,
		&summary.StressLevel,
		&summary.GoalsAchieved,
		&summary.TotalGoals,
		&summary.Gratitude,
		&summary.Wins,
		&summary.Challenges,
		&summary.TomorrowFocus,
		&summary.Notes,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Save writes the summary for (user, day) in a single statement. Omitted fields keep their stored value.
func (r *DailySummaryRepository) Save(ctx context.Context, userID int64, input DailySummaryInput) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO daily_summaries (
			user_id, entry_date, mood, energy_level, stress_level, goals_achieved, total_goals,
			gratitude, wins, challenges, tomorrow_focus, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, entry_date) DO UPDATE SET
			mood = COALESCE(EXCLUDED.mood, daily_summaries.mood),
			energy_level = COALESCE(EXCLUDED.energy_level, daily_summaries.energy_level),
			stress_level = COALESCE(EXCLUDED.stress_level, daily_summaries.stress_level),
			goals_achieved = COALESCE(EXCLUDED.goals_achieved, daily_summaries.goals_achieved),
			total_goals = COALESCE(EXCLUDED.total_goals, daily_summaries.total_goals),
			gratitude = COALESCE(EXCLUDED.gratitude, daily_summaries.gratitude),
			wins = COALESCE(EXCLUDED.wins, daily_summaries.wins),
			challenges = COALESCE(EXCLUDED.challenges, daily_summaries.challenges),
			tomorrow_focus = COALESCE(EXCLUDED.tomorrow_focus, daily_summaries.tomorrow_focus),
			notes = COALESCE(EXCLUDED.notes, daily_summaries.notes),
			updated_at = NOW()
		RETURNING id
	`
	return insertReturningID(
		ctx,
		db,
		query,
		userID,
		input.EntryDate,
		input.Mood,
		input.EnergyLevel,
		input.StressLevel,
		input.GoalsAchieved,
		input.TotalGoals,
		input.Gratitude,
		input.Wins,
		input.Challenges,
		input.TomorrowFocus,
		input.Notes,
	)
}

func (r *DailySummaryRepository) GetByUserAndDate(
	ctx context.Context,
	userID int64,
	date models.Date,
) (*models.DailySummary, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + dailySummaryColumns + ` FROM daily_summaries WHERE user_id = $1 AND entry_date = $2`
	return queryOne(db.QueryRow(ctx, query, userID, date), scanDailySummary)
}

func (r *DailySummaryRepository) ListByUser(
	ctx context.Context,
	userID int64,
	dateRange DateRange,
) ([]models.DailySummary, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	where, args := userScope(userID, dateRange)
	query := `SELECT ` + dailySummaryColumns + ` FROM daily_summaries WHERE ` + where +
		` ORDER BY entry_date DESC`
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanDailySummary)
}
