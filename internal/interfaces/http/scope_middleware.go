package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/oms-agent/internal/application/dto"
)

// RequireScope verifica que el token autenticado tenga el scope indicado.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalScope).
//
// Comportamiento:
//   - 401 Unauthorized → no hay subject en el contexto.
//   - 403 Forbidden    → el token no otorga el scope.
func RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetSubject(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "subject no encontrado en el token",
			})
		}
		if GetScope(c) != scope {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "SCOPE_DENIED",
				Message: "el token no otorga el scope '" + scope + "'",
			})
		}
		return c.Next()
	}
}
