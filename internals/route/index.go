// route/index.go
package routes

import (
	"aulapro_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes monta toda la superficie HTTP:
//   - /api       → público (auth)
//   - /api/a     → administración, detrás del middleware JWT
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	details.PublicRoutes(api, db)
	details.AdminRoutes(api, db)
}
