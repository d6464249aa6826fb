// file: internals/features/capacitacoes/capacitacao/route/capacitacao_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	capCtrl "capacita_backend/internals/features/capacitacoes/capacitacao/controller"
)

// Rotas públicas (leitura)
func CapacitacaoPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := capCtrl.NewCapacitacaoController(db)

	grp := r.Group("/capacitacoes")
	grp.Get("/list", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Get("/:id/datas", ctl.ListDatas)
}

// Rotas de administração (mutação; proteger com auth middleware)
func CapacitacaoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := capCtrl.NewCapacitacaoController(db)

	grp := r.Group("/capacitacoes")
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
	grp.Delete("/:id", ctl.Delete)
}
