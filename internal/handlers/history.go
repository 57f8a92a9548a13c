package handlers

import (
	"net/http"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func ListHistoryHandler(historyService *services.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := historyService.List(c.Context(), owner(c), c.Params("place_id"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(entries)
	}
}

func RecordHistoryHandler(historyService *services.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RecordHistoryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		entry, err := historyService.Record(c.Context(), owner(c), c.Params("place_id"), req)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(entry)
	}
}
