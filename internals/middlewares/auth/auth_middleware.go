package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"presenca_backend/internals/configs"
)

// AuthJWT guards the dashboard API. The token comes from the Authorization
// header (Bearer) with a cookie fallback for the browser client.
func AuthJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
			raw = strings.TrimSpace(raw[len("bearer "):])
		}
		if raw == "" {
			raw = c.Cookies("access_token")
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing token")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(configs.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Locals("user_id", sub)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		return c.Next()
	}
}

// RequireRole restricts a group to one role (e.g. user administration).
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals("role").(string); r != role {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role")
		}
		return c.Next()
	}
}
