package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain/entity"
	"github.com/L20660042/Backend-Proy-sub001/internal/domain/permission"
	"github.com/L20660042/Backend-Proy-sub001/pkg/jwt"
)

// Locals keys para el principal autenticado en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja UserID y Role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return writeError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return writeError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return writeError(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return writeError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "token inválido o expirado")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetRole devuelve el rol del principal (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// RequireRole permite el paso solo si el rol del token está en roles.
// Token sin rol: 401 MISSING_ROLE. Rol no permitido: 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return writeError(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no contiene rol")
		}
		if _, ok := allowed[role]; !ok {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "rol sin acceso a este recurso")
		}
		return c.Next()
	}
}

// RequirePermission exige que el rol del principal tenga al menos una de las capacidades dadas.
func RequirePermission(perms ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return writeError(c, fiber.StatusUnauthorized, "MISSING_ROLE", "el token no contiene rol")
		}
		for _, p := range perms {
			if permission.RoleHas(role, p) {
				return c.Next()
			}
		}
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "permisos insuficientes")
	}
}

// RequireSelfWhenStudent impide que un estudiante consulte datos de otro estudiante.
// Compara el parámetro de ruta param con el UserID del token; otros roles pasan sin cambios.
func RequireSelfWhenStudent(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) == entity.RoleStudent && c.Params(param) != GetUserID(c) {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "solo puede consultar su propia información")
		}
		return c.Next()
	}
}
