// route/auth_route.go
package route

import (
	"aulapro_backend/internals/features/users/auth/controller"
	"aulapro_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	g := api.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/logout", ctrl.Logout)
}
