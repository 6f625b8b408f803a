// details/public_routes.go
package details

import (
	authroute "aulapro_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PublicRoutes(api fiber.Router, db *gorm.DB) {
	authroute.AuthRoutes(api, db)
}
