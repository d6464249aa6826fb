package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schema mínimo criado na mão: os models carregam defaults de função do
// Postgres que o sqlite não migra
func novoAppTeste(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS capacitacoes (
			capacitacao_id TEXT PRIMARY KEY,
			capacitacao_titulo TEXT,
			capacitacao_deleted_at DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS avaliacao_modelos (
			modelo_id TEXT PRIMARY KEY,
			modelo_titulo TEXT,
			modelo_versao INTEGER,
			modelo_deleted_at DATETIME
		)`,
	} {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatalf("criando schema de teste: %v", err)
		}
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM capacitacoes`)
		db.Exec(`DELETE FROM avaliacao_modelos`)
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	app := fiber.New()
	ctl := NewRespostaController(db)
	app.Post("/capacitacoes/:capacitacao_id/avaliacoes", ctl.Submeter)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("executando request: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestSubmeterRejeitaCapacitacaoInexistente(t *testing.T) {
	app, _ := novoAppTeste(t)

	body := `{"modelo_id":"` + uuid.NewString() + `","respostas":[{"pergunta_id":"` + uuid.NewString() + `"}]}`
	status, resposta := postJSON(t, app, "/capacitacoes/"+uuid.NewString()+"/avaliacoes", body)

	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", status)
	}
	if !strings.Contains(resposta, "Capacitação não encontrada") {
		t.Fatalf("resposta deveria apontar a capacitação, veio: %s", resposta)
	}
}

func TestSubmeterPassaDaCapacitacaoQuandoElaExiste(t *testing.T) {
	app, db := novoAppTeste(t)

	capacitacaoID := uuid.NewString()
	if err := db.Exec(
		`INSERT INTO capacitacoes (capacitacao_id, capacitacao_titulo) VALUES (?, ?)`,
		capacitacaoID, "Capacitação de teste",
	).Error; err != nil {
		t.Fatalf("inserindo capacitação: %v", err)
	}

	// capacitação existe; o 404 agora é do modelo, não dela
	body := `{"modelo_id":"` + uuid.NewString() + `","respostas":[{"pergunta_id":"` + uuid.NewString() + `"}]}`
	status, resposta := postJSON(t, app, "/capacitacoes/"+capacitacaoID+"/avaliacoes", body)

	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, esperado 404 (modelo inexistente)", status)
	}
	if strings.Contains(resposta, "Capacitação não encontrada") {
		t.Fatalf("check de capacitação barrou indevidamente: %s", resposta)
	}
	if !strings.Contains(resposta, "Modelo de avaliação não encontrado") {
		t.Fatalf("esperava 404 do modelo, veio: %s", resposta)
	}
}
