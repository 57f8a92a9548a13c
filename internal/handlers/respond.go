package handlers

import (
	"errors"
	"net/http"

	"pinboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// jsonError translates service errors into the `{"error": msg}` body the
// API promises. Status codes are decided here and nowhere else.
func jsonError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	var nfe *services.NotFoundError

	switch {
	case errors.As(err, &ve):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": ve.Msg})
	case errors.As(err, &nfe):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": nfe.Msg})
	case errors.Is(err, services.ErrUserExists):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
