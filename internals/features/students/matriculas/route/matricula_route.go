// route/matricula_route.go
package route

import (
	"aulapro_backend/internals/features/students/matriculas/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MatriculaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMatriculaController(db)

	admin.Get("/grados/:id/matriculas", ctrl.ListMatriculas)
	admin.Post("/grados/:id/matriculas", auth.OnlyAdminGafetes(), ctrl.Matricular)
	admin.Post("/matriculas/:id/baja", auth.OnlyAdminGafetes(), ctrl.Baja)
}
