package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

const SessionContextKey = "session"

// AuthRequired guards a route behind the access gate: requests must
// carry a bearer token issued by a successful password check.
func AuthRequired(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			})
		}

		claims, err := authService.ValidateToken(c.Context(), parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
		}

		c.Locals(SessionContextKey, claims)

		return c.Next()
	}
}

// GetSession returns the validated session claims, or nil outside an
// authenticated request.
func GetSession(c *fiber.Ctx) *service.SessionClaims {
	claims, ok := c.Locals(SessionContextKey).(*service.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
