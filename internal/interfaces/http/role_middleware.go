package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/insights-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que solo deja pasar a los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Se usa para ocultar vistas con precios de costo al rol staff: la utilidad
// por producto revela el costo de compra, que solo ven admin y manager.
//
// Comportamiento:
//   - 401 Unauthorized → no hay rol en el contexto (falta AuthMiddleware).
//   - 403 Forbidden    → rol autenticado pero sin acceso a esta vista.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "role no encontrado en el token",
			})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene acceso a esta vista",
			})
		}
		return c.Next()
	}
}
