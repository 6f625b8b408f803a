// route/configuracion_route.go
package route

import (
	"aulapro_backend/internals/features/school/configuracion/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ConfiguracionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConfiguracionController(db)

	g := admin.Group("/configuracion")
	g.Get("/", ctrl.GetConfiguracion)
	g.Put("/", auth.OnlyAdminGafetes(), ctrl.UpsertConfiguracion)
	g.Post("/logotipo", auth.OnlyAdminGafetes(), ctrl.UploadLogotipo)
}
