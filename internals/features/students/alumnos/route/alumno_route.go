// route/alumno_route.go
package route

import (
	"aulapro_backend/internals/features/students/alumnos/controller"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AlumnoAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAlumnoController(db)

	est := admin.Group("/establecimientos/:establecimientoId/alumnos")
	est.Get("/", ctrl.ListAlumnos)
	est.Post("/", auth.OnlyAdminGafetes(), ctrl.CreateAlumno)

	// búsqueda por código en el contexto de un grado (flujo de matriculación)
	admin.Get("/grados/:id/alumnos/buscar", ctrl.BuscarAlumno)

	g := admin.Group("/alumnos")
	g.Get("/:id", ctrl.GetAlumno)
	g.Put("/:id", auth.OnlyAdminGafetes(), ctrl.UpdateAlumno)
	g.Post("/:id/foto", auth.OnlyAdminGafetes(), ctrl.UploadFoto)
	g.Delete("/:id", auth.OnlyAdminGafetes(), ctrl.DeleteAlumno)
}
