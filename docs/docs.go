// Package docs registra la especificación Swagger de la API en swag.
// swagger.json se sirve también en /docs mediante gofiber/contrib/swagger.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON string

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string { return swaggerJSON }

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
