package auth

import (
	"github.com/gofiber/fiber/v2"
)

const (
	RoleOwner        = "owner"
	RoleAdminGafetes = "admin_gafetes"
	RoleLectura      = "lectura"
)

// RoleMiddlewareWithCustomError valida role + mensaje custom
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles: atajo para uso limpio en rutas
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}

// OnlyAdminGafetes: las mutaciones del sistema requieren admin_gafetes u owner.
func OnlyAdminGafetes() fiber.Handler {
	return OnlyRoles("Solo administradores de gafetes pueden realizar esta acción", RoleAdminGafetes, RoleOwner)
}
