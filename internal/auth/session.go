package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sqlxpertbln/fitness-challenge-90/pkg/utils"
)

type SessionManager struct {
	secret     string
	ttl        time.Duration
	cookieName string
	secure     bool
}

func NewSessionManager(secret, cookieName string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		secret:     secret,
		ttl:        ttl,
		cookieName: cookieName,
		secure:     secure,
	}
}

func (m *SessionManager) CookieName() string {
	return m.cookieName
}

func (m *SessionManager) Issue(openID, name string) (string, error) {
	return utils.GenerateToken(openID, name, m.secret, m.ttl)
}

func (m *SessionManager) Parse(token string) (*utils.Claims, error) {
	return utils.ValidateToken(token, m.secret)
}

func (m *SessionManager) Cookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl / time.Second),
		Expires:  time.Now().Add(m.ttl),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite(),
	}
}

// ClearCookie expires the session cookie in the browser.
func (m *SessionManager) ClearCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite(),
	}
}

// SameSite=None is only accepted by browsers on secure cookies.
func (m *SessionManager) sameSite() string {
	if m.secure {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}
