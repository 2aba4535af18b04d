// handlers/stats.go
package handlers

import (
	"task-tracking-system/middleware"
	"task-tracking-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStatsRoutes(app *fiber.App, statsService *services.StatsService, rolloverService *services.RolloverService) {
	secured := app.Group("/stats",
		middleware.UserContextMiddleware(),
		middleware.RolloverMiddleware(rolloverService),
	)

	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		stats, err := statsService.GetUserStats(userID)
		if err != nil {
			return serviceError(c, err, "failed to get stats")
		}
		return c.JSON(stats)
	})
}
