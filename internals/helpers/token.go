package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Lectura de claims ya validados por el middleware de auth
// (guardados en Locals por auth.AuthMiddleware).

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("userID").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token sin user_id")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido en token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

// GetEstablecimientoIDFromToken devuelve el tenant del token. Los roles
// globales (owner) pueden no traerlo; el caller decide si es obligatorio.
func GetEstablecimientoIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("establecimientoID").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Token sin establecimiento")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "establecimiento_id inválido en token")
	}
	return id, nil
}
