// file: internals/features/usuarios/route/usuario_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usrCtrl "capacita_backend/internals/features/usuarios/controller"
	"capacita_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := usrCtrl.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/refresh-token", ctl.RefreshToken)
}

// Rotas que exigem token; o guard é aplicado pelo agrupador em route/routes.go.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctl := usrCtrl.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Get("/me", ctl.Me)
}
