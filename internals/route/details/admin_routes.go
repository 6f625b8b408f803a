// details/admin_routes.go
package details

import (
	carreraroute "aulapro_backend/internals/features/academics/carreras/route"
	cicloroute "aulapro_backend/internals/features/academics/ciclos/route"
	gradoroute "aulapro_backend/internals/features/academics/grados/route"
	gafeteroute "aulapro_backend/internals/features/gafete/route"
	configroute "aulapro_backend/internals/features/school/configuracion/route"
	establecimientoroute "aulapro_backend/internals/features/school/establecimientos/route"
	alumnoroute "aulapro_backend/internals/features/students/alumnos/route"
	matricularoute "aulapro_backend/internals/features/students/matriculas/route"
	"aulapro_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRoutes agrupa todo lo que exige sesión bajo /api/a.
// Las mutaciones llevan además su guard de rol en cada feature.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/a", auth.AuthMiddleware())

	establecimientoroute.EstablecimientoAdminRoutes(admin, db)
	configroute.ConfiguracionAdminRoutes(admin, db)
	cicloroute.CicloAdminRoutes(admin, db)
	carreraroute.CarreraAdminRoutes(admin, db)
	gradoroute.GradoAdminRoutes(admin, db)
	alumnoroute.AlumnoAdminRoutes(admin, db)
	matricularoute.MatriculaAdminRoutes(admin, db)
	gafeteroute.GafeteAdminRoutes(admin, db)
}
