package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/models"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/services"
)

type stubResolver struct {
	users  map[string]*models.User
	tokens []string
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*models.User, error) {
	s.tokens = append(s.tokens, token)
	return s.users[token], nil
}

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

// statusErrorHandler maps the sentinel errors the way the handlers package does.
func statusErrorHandler(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return c.SendStatus(fiber.StatusUnauthorized)
	case errors.Is(err, services.ErrForbidden):
		return c.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, services.ErrRateLimited):
		return c.SendStatus(fiber.StatusTooManyRequests)
	default:
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}

var (
	testMember = &models.User{ID: 1, OpenID: "member", Role: models.RoleUser}
	testAdmin  = &models.User{ID: 2, OpenID: "admin", Role: models.RoleAdmin}
)

func newGateApp(resolver *stubResolver) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: statusErrorHandler})
	app.Use(ResolveIdentity(resolver, "app_session_id"))
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/public", ok)
	app.Get("/protected", RequireUser(), ok)
	app.Get("/admin", RequireAdmin(), ok)
	return app
}

func TestAuthorizeEvaluatesGatesInOrder(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		tier Tier
		want error
	}{
		{"public anonymous", nil, TierPublic, nil},
		{"protected anonymous", nil, TierProtected, services.ErrUnauthenticated},
		{"protected member", testMember, TierProtected, nil},
		{"admin anonymous", nil, TierAdmin, services.ErrUnauthenticated},
		{"admin member", testMember, TierAdmin, services.ErrForbidden},
		{"admin admin", testAdmin, TierAdmin, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Authorize(tt.user, tt.tier); !errors.Is(err, tt.want) {
				t.Fatalf("Authorize() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTierGatesOverHTTP(t *testing.T) {
	resolver := &stubResolver{users: map[string]*models.User{"member-token": testMember, "admin-token": testAdmin}}
	app := newGateApp(resolver)

	tests := []struct {
		path   string
		token  string
		status int
	}{
		{"/public", "", fiber.StatusOK},
		{"/protected", "", fiber.StatusUnauthorized},
		{"/protected", "member-token", fiber.StatusOK},
		{"/admin", "", fiber.StatusUnauthorized},
		{"/admin", "member-token", fiber.StatusForbidden},
		{"/admin", "admin-token", fiber.StatusOK},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.token != "" {
			req.AddCookie(&http.Cookie{Name: "app_session_id", Value: tt.token})
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != tt.status {
			t.Fatalf("%s with %q: expected %d, got %d", tt.path, tt.token, tt.status, resp.StatusCode)
		}
	}
}

func TestResolveIdentityFallsBackToBearer(t *testing.T) {
	resolver := &stubResolver{users: map[string]*models.User{"member-token": testMember}}
	app := newGateApp(resolver)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer member-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected bearer token to authenticate, got %d", resp.StatusCode)
	}
	if len(resolver.tokens) != 1 || resolver.tokens[0] != "member-token" {
		t.Fatalf("expected a single resolve call with the bearer token, got %v", resolver.tokens)
	}
}

func TestRateLimit(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	app := fiber.New(fiber.Config{ErrorHandler: statusErrorHandler})
	app.Post("/inquiries", RateLimit(limiter), func(c *fiber.Ctx) error { return c.SendString("ok") })

	send := func() int {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/inquiries", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return resp.StatusCode
	}

	if status := send(); status != fiber.StatusOK {
		t.Fatalf("expected 200 under the limit, got %d", status)
	}
	limiter.allowed = false
	if status := send(); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 over the limit, got %d", status)
	}
	limiter.err = errors.New("redis down")
	if status := send(); status != fiber.StatusOK {
		t.Fatalf("expected limiter failure to let the request through, got %d", status)
	}

	noLimit := fiber.New()
	noLimit.Post("/inquiries", RateLimit(nil), func(c *fiber.Ctx) error { return c.SendString("ok") })
	resp, _ := noLimit.Test(httptest.NewRequest(http.MethodPost, "/inquiries", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("nil limiter should disable the check, got %d", resp.StatusCode)
	}
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	resp, _ := app.Test(req)
	if got := resp.Header.Get(RequestIDHeader); got != "req-42" {
		t.Fatalf("expected incoming request id to be kept, got %q", got)
	}

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if got := resp.Header.Get(RequestIDHeader); len(got) != 36 {
		t.Fatalf("expected a generated uuid, got %q", got)
	}
}
