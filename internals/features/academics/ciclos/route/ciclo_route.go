// route/ciclo_route.go
package route

import (
	"aulapro_backend/internals/features/academics/ciclos/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CicloAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCicloController(db)

	est := admin.Group("/establecimientos/:establecimientoId/ciclos")
	est.Get("/", ctrl.ListCiclos)
	est.Post("/", auth.OnlyAdminGafetes(), ctrl.CreateCiclo)

	g := admin.Group("/ciclos")
	g.Get("/:id", ctrl.GetCiclo)
	g.Put("/:id", auth.OnlyAdminGafetes(), ctrl.UpdateCiclo)
	g.Post("/:id/activar", auth.OnlyAdminGafetes(), ctrl.ActivarCiclo)
	g.Delete("/:id", auth.OnlyAdminGafetes(), ctrl.DeleteCiclo)
}
