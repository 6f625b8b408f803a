// route/carrera_route.go
package route

import (
	"aulapro_backend/internals/features/academics/carreras/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CarreraAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCarreraController(db)

	est := admin.Group("/establecimientos/:establecimientoId/carreras")
	est.Get("/", ctrl.ListCarreras)
	est.Post("/", auth.OnlyAdminGafetes(), ctrl.CreateCarrera)

	g := admin.Group("/carreras")
	g.Get("/:id", ctrl.GetCarrera)
	g.Put("/:id", auth.OnlyAdminGafetes(), ctrl.UpdateCarrera)
	g.Delete("/:id", auth.OnlyAdminGafetes(), ctrl.DeleteCarrera)
}
