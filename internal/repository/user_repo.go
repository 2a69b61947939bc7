package repository

import (
	"context"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
)

const userColumns = `id, open_id, name, email, login_method, role, avatar_url, challenge_start_date,
	target_weight, height, birth_date, gender, created_at, updated_at, last_signed_in`

// UpsertUserInput carries the identity fields received at login. Nil fields keep their stored value.
type UpsertUserInput struct {
	OpenID       string
	Name         *string
	Email        *string
	LoginMethod  *string
	Role         *string
	LastSignedIn time.Time
}

// UpdateUserProfileInput is the caller-editable part of a user row.
type UpdateUserProfileInput struct {
	Name               *string        `json:"name" validate:"omitempty,max=255"`
	AvatarURL          *string        `json:"avatarUrl" validate:"omitempty,max=2048"`
	ChallengeStartDate *models.Date   `json:"challengeStartDate"`
	TargetWeight       *models.Number `json:"targetWeight" validate:"omitempty,gt=0,lt=1000"`
	Height             *int           `json:"height" validate:"omitempty,gt=0,lt=300"`
	BirthDate          *models.Date   `json:"birthDate"`
	Gender             *string        `json:"gender" validate:"omitempty,oneof=male female other"`
}

type UserRepository struct {
	store
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{store{db: db}}
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.OpenID,
		&user.Name,
		&user.Email,
		&user.LoginMethod,
		&user.Role,
		&user.AvatarURL,
		&user.ChallengeStartDate,
		&user.TargetWeight,
		&user.Height,
		&user.BirthDate,
		&user.Gender,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastSignedIn,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts the identity or refreshes the existing row in one statement.
// The role column is only written when input.Role is set.
func (r *UserRepository) Upsert(ctx context.Context, input UpsertUserInput) (*models.User, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}

	lastSignedIn := input.LastSignedIn
	if lastSignedIn.IsZero() {
		lastSignedIn = time.Now().UTC()
	}

	query := `
		INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
		VALUES ($1, $2, $3, $4, COALESCE($5, 'user'), $6)
		ON CONFLICT (open_id) DO UPDATE SET
			name = COALESCE(EXCLUDED.name, users.name),
			email = COALESCE(EXCLUDED.email, users.email),
			login_method = COALESCE(EXCLUDED.login_method, users.login_method),
			role = CASE WHEN $5::text IS NULL THEN users.role ELSE EXCLUDED.role END,
			last_signed_in = EXCLUDED.last_signed_in,
			updated_at = NOW()
		RETURNING ` + userColumns

	return scanUser(db.QueryRow(
		ctx,
		query,
		input.OpenID,
		input.Name,
		input.Email,
		input.LoginMethod,
		input.Role,
		lastSignedIn,
	))
}

func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (*models.User, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE open_id = $1`
	return queryOne(db.QueryRow(ctx, query, openID), scanUser)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return queryOne(db.QueryRow(ctx, query, id), scanUser)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID int64, input UpdateUserProfileInput) error {
	var p patch
	setIfPresent(&p, "name", input.Name)
	setIfPresent(&p, "avatar_url", input.AvatarURL)
	setIfPresent(&p, "challenge_start_date", input.ChallengeStartDate)
	setIfPresent(&p, "target_weight", input.TargetWeight)
	setIfPresent(&p, "height", input.Height)
	setIfPresent(&p, "birth_date", input.BirthDate)
	setIfPresent(&p, "gender", input.Gender)
	return applyGlobal(ctx, r.store, "users", userID, &p)
}
