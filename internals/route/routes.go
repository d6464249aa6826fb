// file: internals/route/routes.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	modRoute "capacita_backend/internals/features/avaliacoes/modelos/route"
	relRoute "capacita_backend/internals/features/avaliacoes/relatorios/route"
	respRoute "capacita_backend/internals/features/avaliacoes/respostas/route"
	capRoute "capacita_backend/internals/features/capacitacoes/capacitacao/route"
	insRoute "capacita_backend/internals/features/capacitacoes/inscricoes/route"
	presRoute "capacita_backend/internals/features/capacitacoes/presencas/route"
	usrRoute "capacita_backend/internals/features/usuarios/route"
	"capacita_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Registrando rotas de autenticação...")
	usrRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// leituras e submissão de avaliação: sem token
	log.Println("[INFO] Registrando grupo PUBLIC...")
	public := app.Group("/api/public")
	capRoute.CapacitacaoPublicRoutes(public, db)
	insRoute.InscricaoPublicRoutes(public, db)
	presRoute.PresencaPublicRoutes(public, db)
	modRoute.ModeloPublicRoutes(public, db)
	respRoute.RespostaPublicRoutes(public, db)

	// ===================== ADMIN =====================
	// mutações e relatórios: atrás do guard JWT
	log.Println("[INFO] Registrando grupo ADMIN (JWT)...")
	admin := app.Group("/api/a", auth.AuthMiddleware())
	capRoute.CapacitacaoAdminRoutes(admin, db)
	insRoute.InscricaoAdminRoutes(admin, db)
	presRoute.PresencaAdminRoutes(admin, db)
	modRoute.ModeloAdminRoutes(admin, db)
	relRoute.RelatorioAdminRoutes(admin, db)
	usrRoute.AuthProtectedRoutes(admin, db)
}
