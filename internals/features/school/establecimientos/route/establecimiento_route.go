// route/establecimiento_route.go
package route

import (
	"aulapro_backend/internals/features/school/establecimientos/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EstablecimientoAdminRoutes monta el CRUD de establecimientos bajo el
// grupo autenticado. Las mutaciones quedan sólo para owner.
func EstablecimientoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEstablecimientoController(db)

	g := admin.Group("/establecimientos")
	g.Get("/", ctrl.ListEstablecimientos)
	g.Get("/:id", ctrl.GetEstablecimiento)

	soloOwner := auth.OnlyRoles("Solo el owner puede administrar establecimientos", auth.RoleOwner)
	g.Post("/", soloOwner, ctrl.CreateEstablecimiento)
	g.Put("/:id", soloOwner, ctrl.UpdateEstablecimiento)
	g.Post("/:id/background", auth.OnlyAdminGafetes(), ctrl.UploadBackground)
	g.Delete("/:id", soloOwner, ctrl.DeleteEstablecimiento)
}
