// file: internals/features/avaliacoes/relatorios/route/relatorio_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	relCtrl "capacita_backend/internals/features/avaliacoes/relatorios/controller"
)

// Relatório é leitura gerencial; fica atrás do guard de admin.
func RelatorioAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := relCtrl.NewRelatorioController(db)

	r.Get("/capacitacoes/:capacitacao_id/relatorio-avaliacao", ctl.Gerar)
}
