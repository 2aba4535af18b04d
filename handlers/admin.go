// handlers/admin.go
package handlers

import (
	"task-tracking-system/middleware"
	"task-tracking-system/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAdminRoutes(app *fiber.App, adminService *services.AdminService, db *gorm.DB) {
	admin := app.Group("/admin",
		middleware.UserContextMiddleware(),
		middleware.AdminRequired(db, 1),
	)

	admin.Get("/users", func(c *fiber.Ctx) error {
		users, err := adminService.ListUsers()
		if err != nil {
			return serviceError(c, err, "failed to list users")
		}
		return c.JSON(users)
	})

	admin.Get("/users/deleted", func(c *fiber.Ctx) error {
		users, err := adminService.ListDeletedUsers()
		if err != nil {
			return serviceError(c, err, "failed to list deleted users")
		}
		return c.JSON(users)
	})

	admin.Get("/users/admins", func(c *fiber.Ctx) error {
		users, err := adminService.ListAdmins()
		if err != nil {
			return serviceError(c, err, "failed to list admins")
		}
		return c.JSON(users)
	})

	admin.Post("/users/:id/ban", func(c *fiber.Ctx) error {
		user, err := adminService.ToggleBan(c.Params("id"))
		if err != nil {
			return serviceError(c, err, "failed to toggle ban")
		}
		return c.JSON(user)
	})

	admin.Post("/users/:id/warn", func(c *fiber.Ctx) error {
		user, err := adminService.WarnUser(c.Params("id"))
		if err != nil {
			return serviceError(c, err, "failed to warn user")
		}
		return c.JSON(user)
	})

	admin.Post("/users/:id/soft-delete", func(c *fiber.Ctx) error {
		user, err := adminService.SoftDeleteUser(c.Params("id"))
		if err != nil {
			return serviceError(c, err, "failed to soft-delete user")
		}
		return c.JSON(user)
	})

	// Hard delete cascades through all of the user's data; level 2 only.
	admin.Delete("/users/:id", middleware.AdminRequired(db, 2), func(c *fiber.Ctx) error {
		if err := adminService.DeleteUser(c.Params("id")); err != nil {
			return serviceError(c, err, "failed to delete user")
		}
		return c.JSON(fiber.Map{"message": "user deleted"})
	})
}
