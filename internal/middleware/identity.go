package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/services"
)

const userKey = "user"

type identityResolver interface {
	Resolve(ctx context.Context, token string) (*models.User, error)
}

// ResolveIdentity looks the caller up once per request. The session cookie
// wins over a bearer token. Anonymous callers continue with no user set.
func ResolveIdentity(resolver identityResolver, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			token = bearerToken(c.Get(fiber.HeaderAuthorization))
		}

		user, err := resolver.Resolve(c.UserContext(), token)
		if err != nil {
			return err
		}
		if user != nil {
			c.Locals(userKey, user)
		}
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// CurrentUser returns the identity resolved for this request, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

type Tier int

const (
	TierPublic Tier = iota
	TierProtected
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierProtected:
		return "protected"
	case TierAdmin:
		return "admin"
	default:
		return "public"
	}
}

type predicate func(user *models.User) error

func requireIdentity(user *models.User) error {
	if user == nil {
		return services.ErrUnauthenticated
	}
	return nil
}

func requireAdminRole(user *models.User) error {
	if !user.IsAdmin() {
		return services.ErrForbidden
	}
	return nil
}

// gates lists, per tier, the predicates that must pass in order.
var gates = map[Tier][]predicate{
	TierPublic:    nil,
	TierProtected: {requireIdentity},
	TierAdmin:     {requireIdentity, requireAdminRole},
}

// Authorize checks user against the tier. The first failing predicate wins,
// so an anonymous caller on an admin procedure gets ErrUnauthenticated.
func Authorize(user *models.User, tier Tier) error {
	for _, check := range gates[tier] {
		if err := check(user); err != nil {
			return err
		}
	}
	return nil
}

func Require(tier Tier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := Authorize(CurrentUser(c), tier); err != nil {
			return err
		}
		return c.Next()
	}
}

func RequireUser() fiber.Handler {
	return Require(TierProtected)
}

func RequireAdmin() fiber.Handler {
	return Require(TierAdmin)
}
