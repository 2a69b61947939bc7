package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sqlxpertbln/fitness-challenge-90/internal/logging"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID tags the request with a correlation id and a request-scoped logger.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := strings.TrimSpace(c.Get(RequestIDHeader))
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		c.Locals(requestIDKey, requestID)
		c.Set(RequestIDHeader, requestID)
		c.SetUserContext(logging.WithRequestID(c.UserContext(), requestID))

		return c.Next()
	}
}

func GetRequestID(c *fiber.Ctx) string {
	requestID, _ := c.Locals(requestIDKey).(string)
	return requestID
}

// AccessLog writes one structured line per request once the handler chain returns.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Render the error now so the logged status is the one sent.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		event := logging.Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			event = logging.Ctx(c.UserContext()).Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")

		return nil
	}
}
