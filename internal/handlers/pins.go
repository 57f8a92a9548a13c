package handlers

import (
	"net/http"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func ListPinsHandler(pinService *services.PinService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pins, err := pinService.List(c.Context(), owner(c), c.Params("place_id"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(pins)
	}
}

func CreatePinHandler(pinService *services.PinService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreatePinRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		pin, err := pinService.Create(c.Context(), owner(c), c.Params("place_id"), req)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(pin)
	}
}

func UpdatePinHandler(pinService *services.PinService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd models.PinUpdate
		if err := c.BodyParser(&upd); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		pin, err := pinService.Update(c.Context(), owner(c), c.Params("pin_id"), upd)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(pin)
	}
}

func DeletePinHandler(pinService *services.PinService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := pinService.Delete(c.Context(), owner(c), c.Params("pin_id")); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(fiber.Map{"status": "deleted"})
	}
}

// MoveItemHandler serves the legacy audit-log endpoint. It only appends a
// log entry; the referenced item is never modified.
func MoveItemHandler(pinService *services.PinService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.MoveRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		entry, err := pinService.Move(c.Context(), owner(c), c.Params("item_id"), req)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "id": entry.ID.Hex()})
	}
}
