package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	corsAllowMethods = "GET, POST, OPTIONS, PUT, PATCH, DELETE"
	corsAllowHeaders = "X-Requested-With, content-type"
)

// CORSMiddleware allows any origin, with credentials, on every response.
// fiber's cors middleware refuses a wildcard origin combined with
// credentials, so the headers are set directly.
func CORSMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowCredentials, "true")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
