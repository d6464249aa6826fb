// file: internals/databases/migrate.go
package database

import (
	"log"
	"os"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
	respModel "capacita_backend/internals/features/avaliacoes/respostas/model"
	capModel "capacita_backend/internals/features/capacitacoes/capacitacao/model"
	insModel "capacita_backend/internals/features/capacitacoes/inscricoes/model"
	presModel "capacita_backend/internals/features/capacitacoes/presencas/model"
	usrModel "capacita_backend/internals/features/usuarios/model"
)

// Migrate roda AutoMigrate quando DB_AUTO_MIGRATE=true. Em produção o
// schema é gerido fora do app; isto serve para ambiente local e staging.
func Migrate() {
	if os.Getenv("DB_AUTO_MIGRATE") != "true" {
		log.Println("⚙️ DB_AUTO_MIGRATE desligado; pulando migração.")
		return
	}

	err := DB.AutoMigrate(
		&usrModel.UsuarioModel{},
		&capModel.CapacitacaoModel{},
		&insModel.InscricaoModel{},
		&presModel.PresencaModel{},
		&modModel.ModeloAvaliacaoModel{},
		&modModel.PerguntaModel{},
		&respModel.AvaliacaoModel{},
		&respModel.RespostaModel{},
	)
	if err != nil {
		log.Fatalf("❌ Falha na migração automática: %v", err)
	}
	log.Println("✅ Migração automática concluída.")
}
