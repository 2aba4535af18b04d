// middleware/admin.go
package middleware

import (
	"errors"
	"log"

	"task-tracking-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired gates a route on the caller's stored admin level. Level 1
// covers moderation reads and warnings; level 2 is required for destructive
// actions.
func AdminRequired(db *gorm.DB, requiredLevel int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing user context",
			})
		}

		var user models.User
		if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "user not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to verify admin level",
				"cause": err.Error(),
			})
		}

		if user.AdminLevel < requiredLevel {
			log.Printf("🚫 [ADMIN] user %s (level %d) denied on %s (requires %d)",
				userID, user.AdminLevel, c.Path(), requiredLevel)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient admin privilege",
			})
		}

		c.Locals("admin_level", user.AdminLevel)
		return c.Next()
	}
}
