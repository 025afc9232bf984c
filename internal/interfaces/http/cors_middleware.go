package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

// CORS adjunta las cabeceras fijas a toda respuesta y contesta el preflight OPTIONS con 204.
// Con origen comodín no se anuncian credenciales: los navegadores rechazan esa combinación.
func CORS(cfg config.CORSConfig) fiber.Handler {
	maxAge := strconv.Itoa(cfg.MaxAge)
	credentials := cfg.AllowCredentials && cfg.AllowedOrigins != "*"
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowedOrigins)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowedMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowedHeaders)
		if credentials {
			c.Set(fiber.HeaderAccessControlAllowCredentials, "true")
		}
		if cfg.MaxAge > 0 {
			c.Set(fiber.HeaderAccessControlMaxAge, maxAge)
		}
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}
