// handlers/friends.go
package handlers

import (
	"task-tracking-system/middleware"
	"task-tracking-system/models"
	"task-tracking-system/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupFriendRoutes(app *fiber.App, friendService *services.FriendService, rolloverService *services.RolloverService, db *gorm.DB) {
	// Global snapshot is gateway-authed but not user-scoped.
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		var entries []models.LeaderboardEntry
		if err := db.Order("rank ASC").Find(&entries).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to read leaderboard",
				"cause": err.Error(),
			})
		}
		return c.JSON(entries)
	})

	secured := app.Group("/friends",
		middleware.UserContextMiddleware(),
		middleware.RolloverMiddleware(rolloverService),
	)

	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		friends, err := friendService.ListFriends(userID)
		if err != nil {
			return serviceError(c, err, "failed to list friends")
		}
		return c.JSON(friends)
	})

	secured.Post("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			Username string `json:"username"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if err := friendService.AddFriend(userID, req.Username); err != nil {
			return serviceError(c, err, "failed to add friend")
		}
		return c.JSON(fiber.Map{"message": "friend added"})
	})

	secured.Delete("/:username", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		if err := friendService.RemoveFriend(userID, c.Params("username")); err != nil {
			return serviceError(c, err, "failed to remove friend")
		}
		return c.JSON(fiber.Map{"message": "friend removed"})
	})

	secured.Get("/leaderboard", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		rows, err := friendService.Leaderboard(userID)
		if err != nil {
			return serviceError(c, err, "failed to build leaderboard")
		}
		return c.JSON(rows)
	})
}
