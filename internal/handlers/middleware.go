package handlers

import (
	"net/http"
	"strings"

	"pinboard-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

const localUsername = "username"

// AuthMiddleware verifies the bearer token and stores the caller's username
// in locals. Every protected route runs this before touching any store.
func AuthMiddleware(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		username, err := userService.VerifyToken(token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		c.Locals(localUsername, username)
		return c.Next()
	}
}

// owner returns the authenticated username set by AuthMiddleware.
func owner(c *fiber.Ctx) string {
	return c.Locals(localUsername).(string)
}
