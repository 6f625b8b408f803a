// route/grado_route.go
package route

import (
	"aulapro_backend/internals/features/academics/grados/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GradoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGradoController(db)

	est := admin.Group("/establecimientos/:establecimientoId/grados")
	est.Get("/", ctrl.ListGrados)
	est.Post("/", auth.OnlyAdminGafetes(), ctrl.CreateGrado)

	g := admin.Group("/grados")
	g.Get("/:id", ctrl.GetGrado)
	g.Put("/:id", auth.OnlyAdminGafetes(), ctrl.UpdateGrado)
	g.Delete("/:id", auth.OnlyAdminGafetes(), ctrl.DeleteGrado)
}
