// handlers/records.go
package handlers

import (
	"errors"

	"task-tracking-system/middleware"
	"task-tracking-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRecordRoutes(app *fiber.App, recordService *services.RecordService, rolloverService *services.RolloverService) {
	secured := app.Group("/records",
		middleware.UserContextMiddleware(),
		middleware.RolloverMiddleware(rolloverService),
	)

	// Get (or lazily create) the daily record for a date.
	secured.Get("/", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		record, err := recordService.GetOrCreateRecord(userID, c.Query("date"))
		if err != nil {
			return serviceError(c, err, "failed to get daily record")
		}
		return c.JSON(record)
	})

	secured.Get("/all", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		records, err := recordService.GetAllRecords(userID)
		if err != nil {
			return serviceError(c, err, "failed to list daily records")
		}
		return c.JSON(records)
	})

	secured.Get("/tasks", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		tasks, err := recordService.GetTasks(userID, c.Query("date"))
		if err != nil {
			return serviceError(c, err, "failed to get tasks")
		}
		return c.JSON(tasks)
	})

	secured.Post("/tasks", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var in services.AddTaskInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		record, err := recordService.AddTask(userID, in)
		if err != nil {
			return serviceError(c, err, "failed to add task")
		}
		return c.JSON(record)
	})

	secured.Patch("/tasks", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			Date      string `json:"date"`
			TaskID    string `json:"taskId"`
			Completed bool   `json:"completed"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		record, err := recordService.UpdateTask(userID, req.Date, req.TaskID, req.Completed)
		if err != nil {
			return serviceError(c, err, "failed to update task")
		}
		return c.JSON(record)
	})

	secured.Delete("/tasks", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			Date   string `json:"date"`
			TaskID string `json:"taskId"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		record, err := recordService.DeleteTask(userID, req.Date, req.TaskID)
		if err != nil {
			return serviceError(c, err, "failed to delete task")
		}
		return c.JSON(fiber.Map{
			"message": "task deleted successfully",
			"tasks":   record.Tasks,
		})
	})
}

// serviceError translates the service error taxonomy into HTTP statuses.
func serviceError(c *fiber.Ctx, err error, msg string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrRecordLocked):
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{
		"error": msg,
		"cause": err.Error(),
	})
}
