// middleware/gateway.go
package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AccessTokenMiddleware requires "Authorization: Bearer <token>" (or the raw
// token) on every request. An empty token disables the check, which is the
// normal setup for a local desktop install.
func AccessTokenMiddleware(expectedToken string) fiber.Handler {
	if expectedToken == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Warn().Str("path", c.Path()).Msg("🚫 [ACCESS] missing Authorization header")
			return fiber.NewError(fiber.StatusUnauthorized, "access token missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
			log.Warn().Str("path", c.Path()).Msg("❌ [ACCESS] invalid token")
			return fiber.NewError(fiber.StatusUnauthorized, "invalid access token")
		}
		return c.Next()
	}
}
