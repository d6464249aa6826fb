// file: internals/features/capacitacoes/inscricoes/route/inscricao_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	insCtrl "capacita_backend/internals/features/capacitacoes/inscricoes/controller"
)

func InscricaoPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := insCtrl.NewInscricaoController(db)

	r.Get("/capacitacoes/:capacitacao_id/inscricoes/list", ctl.List)
}

func InscricaoAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := insCtrl.NewInscricaoController(db)

	r.Post("/capacitacoes/:capacitacao_id/inscricoes", ctl.Create)
	r.Patch("/inscricoes/:id", ctl.Patch)
	r.Delete("/inscricoes/:id", ctl.Delete)
}
