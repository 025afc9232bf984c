package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/dto"
	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
	"github.com/L20660042/Backend-Proy-sub001/pkg/logger"
)

// ErrorHandler traduce cualquier error devuelto por handlers o middlewares al sobre uniforme
// dto.ErrorResponse. Los 5xx se registran con la causa técnica; al cliente solo llega el mensaje.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, code, msg := classify(err)

		var fields []dto.FieldError
		var verr *validation.ValidationError
		if errors.As(err, &verr) {
			fields = verr.Fields
		}

		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Msg("error en la petición")
		}
		return writeErrorWithFields(c, status, code, msg, fields)
	}
}

func classify(err error) (status int, code, msg string) {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, "VALIDATION_ERROR", "la solicitud contiene campos inválidos"
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr.Code, codeForStatus(ferr.Code), ferr.Message
	}

	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, "INVALID_ID", domain.Message(err)
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "BAD_REQUEST", domain.Message(err)
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED", domain.Message(err)
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", domain.Message(err)
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", domain.Message(err)
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT", domain.Message(err)
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, "BAD_GATEWAY", domain.Message(err)
	}
	return fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor"
}

// codeForStatus "Method Not Allowed" -> "METHOD_NOT_ALLOWED".
func codeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func writeError(c *fiber.Ctx, status int, code, msg string) error {
	return writeErrorWithFields(c, status, code, msg, nil)
}

func writeErrorWithFields(c *fiber.Ctx, status int, code, msg string, fields []dto.FieldError) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Success:   false,
		Status:    status,
		Code:      code,
		Message:   msg,
		Errors:    fields,
		Timestamp: time.Now().UTC(),
	})
}
