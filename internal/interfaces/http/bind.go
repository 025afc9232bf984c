package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/application/validation"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
)

var errInvalidBody = domain.New(domain.ErrInvalidInput, "cuerpo de la petición inválido")

// bindBody parsea el cuerpo JSON en dst y lo valida antes de llegar al caso de uso.
func bindBody(c *fiber.Ctx, v *validation.Validator, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.WithCause(errInvalidBody, err)
	}
	return v.Struct(dst)
}

// bindQuery parsea la query string en dst y la valida.
func bindQuery(c *fiber.Ctx, v *validation.Validator, dst interface{}) error {
	if err := c.QueryParser(dst); err != nil {
		return domain.WithCause(domain.New(domain.ErrInvalidInput, "parámetros de consulta inválidos"), err)
	}
	return v.Struct(dst)
}
