// file: internals/features/capacitacoes/presencas/route/presenca_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	presCtrl "capacita_backend/internals/features/capacitacoes/presencas/controller"
)

func PresencaPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := presCtrl.NewPresencaController(db)

	grp := r.Group("/capacitacoes/:capacitacao_id/presencas")
	grp.Get("/", ctl.ListarPorData)
	grp.Get("/inscrito/:inscricao_id", ctl.ListarPorInscrito)
}

func PresencaAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := presCtrl.NewPresencaController(db)

	grp := r.Group("/capacitacoes/:capacitacao_id/presencas")
	grp.Post("/", ctl.Marcar)
	grp.Delete("/", ctl.Remover)
	grp.Put("/dia", ctl.SubstituirDia)
}
