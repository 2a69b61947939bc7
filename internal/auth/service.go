package auth

import (
	"context"
	"errors"
	"time"

	"github.com/sqlxpertbln/fitness-challenge-90/internal/logging"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

type userStore interface {
	Upsert(ctx context.Context, input repository.UpsertUserInput) (*models.User, error)
	GetByOpenID(ctx context.Context, openID string) (*models.User, error)
}

// Service turns identities into user rows and session tokens back into users.
type Service struct {
	users    userStore
	policy   AdminPolicy
	sessions *SessionManager
}

func NewService(users userStore, policy AdminPolicy, sessions *SessionManager) *Service {
	return &Service{users: users, policy: policy, sessions: sessions}
}

func (s *Service) Sessions() *SessionManager {
	return s.sessions
}

// Login records the sign-in and returns a session token. Without a database
// the sign-in is not recorded but the session is still issued.
func (s *Service) Login(ctx context.Context, identity Identity) (string, error) {
	input := repository.UpsertUserInput{
		OpenID:       identity.OpenID,
		Name:         optional(identity.Name),
		Email:        optional(identity.Email),
		LoginMethod:  optional(identity.LoginMethod),
		Role:         s.policy.RoleFor(identity.OpenID),
		LastSignedIn: time.Now().UTC(),
	}

	_, err := s.users.Upsert(ctx, input)
	if errors.Is(err, repository.ErrStoreUnavailable) {
		logging.Ctx(ctx).Warn().Str("open_id", identity.OpenID).Msg("cannot upsert user: database not available")
	} else if err != nil {
		return "", err
	}

	return s.sessions.Issue(identity.OpenID, identity.Name)
}

// Resolve maps a session token to its user. Missing, invalid and orphaned
// tokens resolve to nil, as does any token when the database is down.
func (s *Service) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.sessions.Parse(token)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("ignoring invalid session token")
		return nil, nil
	}

	user, err := s.users.GetByOpenID(ctx, claims.OpenID)
	if errors.Is(err, repository.ErrStoreUnavailable) {
		logging.Ctx(ctx).Warn().Msg("cannot resolve session user: database not available")
		return nil, nil
	}
	return user, err
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
