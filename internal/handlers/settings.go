package handlers

import (
	"net/http"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func GetLastPlaceHandler(settingsService *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lp, err := settingsService.GetLastPlace(c.Context(), owner(c))
		if err != nil {
			return jsonError(c, err)
		}
		if lp == nil {
			return c.JSON(fiber.Map{"placeId": nil, "placeName": nil})
		}
		return c.JSON(lp)
	}
}

func SetLastPlaceHandler(settingsService *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LastPlaceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		if err := settingsService.SetLastPlace(c.Context(), owner(c), req); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(fiber.Map{"message": "saved"})
	}
}

func ClearLastPlaceHandler(settingsService *services.SettingsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := settingsService.ClearLastPlace(c.Context(), owner(c)); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(fiber.Map{"message": "cleared"})
	}
}
