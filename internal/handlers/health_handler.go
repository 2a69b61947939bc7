package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Health reports liveness and whether the database answers. The process is
// healthy without a database, so the status code is always 200.
func Health(dbUp func(ctx context.Context) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		database := "unavailable"
		if dbUp != nil && dbUp(c.UserContext()) {
			database = "up"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": database,
		})
	}
}
