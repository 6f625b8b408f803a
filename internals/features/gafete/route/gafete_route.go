// route/gafete_route.go
package route

import (
	"aulapro_backend/internals/features/gafete/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GafeteAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGafeteController(db)

	// editor de layout por establecimiento
	admin.Get("/establecimientos/:id/gafete/layout", ctrl.GetLayout)
	admin.Put("/establecimientos/:id/gafete/layout", auth.OnlyAdminGafetes(), ctrl.GuardarLayout)
	admin.Delete("/establecimientos/:id/gafete/layout", auth.OnlyAdminGafetes(), ctrl.ResetLayout)

	// render por matrícula
	admin.Get("/matriculas/:id/gafete.jpg", ctrl.GetGafeteJPG)
	admin.Get("/matriculas/:id/gafete_descarga.jpg", ctrl.DescargarGafeteJPG)
}
