// handlers/users.go
package handlers

import (
	"fmt"
	"path/filepath"

	"task-tracking-system/middleware"
	"task-tracking-system/services"
	"task-tracking-system/utils"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userService *services.UserService, badgeService *services.BadgeService, rolloverService *services.RolloverService) {
	secured := app.Group("/users/me",
		middleware.UserContextMiddleware(),
		middleware.RolloverMiddleware(rolloverService),
	)

	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		user, err := userService.GetProfile(userID)
		if err != nil {
			return serviceError(c, err, "failed to get profile")
		}
		return c.JSON(user)
	})

	secured.Patch("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var update services.ProfileUpdate
		if err := c.BodyParser(&update); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		user, err := userService.UpdateProfile(userID, update)
		if err != nil {
			return serviceError(c, err, "failed to update profile")
		}
		return c.JSON(user)
	})

	secured.Post("/avatar", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		fileHeader, err := c.FormFile("avatar")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "avatar file required",
				"cause": err.Error(),
			})
		}

		key := fmt.Sprintf("avatars/%s%s", userID, filepath.Ext(fileHeader.Filename))
		url, err := utils.UploadFileToR2(fileHeader, key)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "avatar upload failed",
				"cause": err.Error(),
			})
		}

		user, err := userService.SetAvatarURL(userID, url)
		if err != nil {
			return serviceError(c, err, "failed to store avatar URL")
		}
		return c.JSON(fiber.Map{
			"avatar_url": url,
			"user":       user,
		})
	})

	secured.Get("/badges", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		badges, err := badgeService.ListBadges(userID)
		if err != nil {
			return serviceError(c, err, "failed to list badges")
		}
		return c.JSON(badges)
	})
}
