package http

import (
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/pkg/logger"
)

const maxLoggedBody = 1024

var passwordRe = regexp.MustCompile(`("(?i:password|newPassword|code)"\s*:\s*)"(?:[^"\\]|\\.)*"`)

// RequestLogger registra método, ruta y cuerpo (sin contraseñas y truncado) al entrar, y status
// y duración al terminar. Si el handler devuelve error lo resuelve con el ErrorHandler de la app
// para registrar el status real; la respuesta no cambia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID, _ := c.Locals("requestid").(string)

		ev := log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.OriginalURL())
		if body := c.Body(); len(body) > 0 {
			ev = ev.Str("body", sanitizeBody(body))
		}
		ev.Msg("petición recibida")

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		done := log.Info()
		if status >= fiber.StatusInternalServerError {
			done = log.Error()
		}
		done.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.OriginalURL()).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Msg("petición completada")
		return nil
	}
}

func sanitizeBody(body []byte) string {
	s := passwordRe.ReplaceAllString(string(body), `$1"***"`)
	if len(s) > maxLoggedBody {
		return s[:maxLoggedBody] + "...(truncado)"
	}
	return s
}
