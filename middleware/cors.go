package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// CORS returns the permissive cross-origin middleware for normal requests.
func CORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: corsAllowOrigin,
		AllowHeaders: corsAllowHeaders,
		AllowMethods: corsAllowMethods,
	})
}

// Preflight puts the CORS headers on every response, including requests
// without an Origin header, and answers OPTIONS with an empty 200. Browsers
// calling the functions expect 200 rather than the 204 the cors middleware
// sends.
func Preflight() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, corsAllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsAllowHeaders)
		if c.Method() != fiber.MethodOptions {
			return c.Next()
		}
		c.Set(fiber.HeaderAccessControlAllowMethods, corsAllowMethods)
		return c.Status(fiber.StatusOK).Send(nil)
	}
}
