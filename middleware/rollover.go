// middleware/rollover.go
package middleware

import (
	"task-tracking-system/services"

	"github.com/gofiber/fiber/v2"
)

// RolloverMiddleware runs the daily rollover before any user-scoped handler,
// so the user's first touch of a new day always observes settled streak
// state. ProcessRollover is an idempotent no-op for the rest of the day and
// never fails the request.
func RolloverMiddleware(rollover *services.RolloverService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
			rollover.ProcessRollover(userID)
		}
		return c.Next()
	}
}
