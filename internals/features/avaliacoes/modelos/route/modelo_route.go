// file: internals/features/avaliacoes/modelos/route/modelo_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	modCtrl "capacita_backend/internals/features/avaliacoes/modelos/controller"
)

func ModeloPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := modCtrl.NewModeloController(db)

	grp := r.Group("/avaliacoes/modelos")
	grp.Get("/list", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}

func ModeloAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := modCtrl.NewModeloController(db)

	grp := r.Group("/avaliacoes/modelos")
	grp.Post("/", ctl.Create)
	grp.Delete("/:id", ctl.Delete)
}
