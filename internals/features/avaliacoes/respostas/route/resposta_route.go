// file: internals/features/avaliacoes/respostas/route/resposta_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	respCtrl "capacita_backend/internals/features/avaliacoes/respostas/controller"
)

// Submissão é pública: o respondente não é operador autenticado.
func RespostaPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := respCtrl.NewRespostaController(db)

	r.Post("/capacitacoes/:capacitacao_id/avaliacoes", ctl.Submeter)
	r.Get("/capacitacoes/:capacitacao_id/avaliacoes/total", ctl.Total)
}
