package handlers

import (
	"net/http"

	"pinboard-backend/internal/models"
	"pinboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

func RegisterHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		user, err := userService.Register(c.Context(), req)
		if err != nil {
			return jsonError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(user)
	}
}

func LoginHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
		}
		res, err := userService.Login(c.Context(), req)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(res)
	}
}

func CheckUsernameHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exists, err := userService.UsernameExists(c.Context(), c.Params("username"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(fiber.Map{"exists": exists})
	}
}
