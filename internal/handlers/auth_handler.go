package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/auth"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/logging"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/middleware"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/repository"
)

type loginService interface {
	Login(ctx context.Context, identity auth.Identity) (string, error)
	Sessions() *auth.SessionManager
}

type profileStore interface {
	UpdateProfile(ctx context.Context, userID int64, input repository.UpdateUserProfileInput) error
}

type AuthHandler struct {
	authService loginService
	exchanger   auth.CodeExchanger
	userRepo    profileStore
}

func NewAuthHandler(authService loginService, exchanger auth.CodeExchanger, userRepo profileStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		exchanger:   exchanger,
		userRepo:    userRepo,
	}
}

// Me returns the caller or null for anonymous requests.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return respondResult(c, middleware.CurrentUser(c))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.authService.Sessions().ClearCookie())
	return respondSuccess(c)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input repository.UpdateUserProfileInput
	if err := bindInput(c, &input); err != nil {
		return err
	}

	if err := h.userRepo.UpdateProfile(c.UserContext(), userID, input); err != nil {
		return err
	}
	return respondSuccess(c)
}

// OAuthCallback finishes the identity server login: it exchanges the code,
// records the sign-in, sets the session cookie and sends the browser home.
func (h *AuthHandler) OAuthCallback(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Query("code"))
	state := strings.TrimSpace(c.Query("state"))
	if code == "" || state == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "code and state are required"})
	}

	ctx := c.UserContext()
	identity, err := h.exchanger.Exchange(ctx, code, auth.RedirectURIFromState(state))
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("oauth code exchange failed")
		if errors.Is(err, auth.ErrOAuthNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Login is not configured"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "OAuth callback failed"})
	}
	if identity == nil || identity.OpenID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "openId missing from user info"})
	}

	token, err := h.authService.Login(ctx, *identity)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("open_id", identity.OpenID).Msg("login failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "OAuth callback failed"})
	}

	c.Cookie(h.authService.Sessions().Cookie(token))
	return c.Redirect("/", fiber.StatusFound)
}
