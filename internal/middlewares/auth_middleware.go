package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/auth"
)

const userIDKey = "user_id"

// AuthMiddleware verifies the bearer token and stashes the authenticated
// user id in the request locals.
func AuthMiddleware(issuer *auth.TokenIssuer) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header must be a bearer token",
			})
		}

		userID, err := issuer.Verify(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(userIDKey, userID)

		return c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}
