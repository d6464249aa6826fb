package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	capModel "capacita_backend/internals/features/capacitacoes/capacitacao/model"
	presModel "capacita_backend/internals/features/capacitacoes/presencas/model"
)

func novoDBTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	if err := db.AutoMigrate(&presModel.PresencaModel{}); err != nil {
		t.Fatalf("migrando: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func capTeste(dias int) capModel.CapacitacaoModel {
	ini := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fim := ini.AddDate(0, 0, dias-1)
	return capModel.CapacitacaoModel{
		CapacitacaoID:         uuid.New(),
		CapacitacaoTitulo:     "Capacitação de teste",
		CapacitacaoDataInicio: ini,
		CapacitacaoDataFim:    &fim,
	}
}

func contarLinhas(t *testing.T, db *gorm.DB, capID, insID uuid.UUID, data time.Time) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&presModel.PresencaModel{}).
		Where("presenca_capacitacao_id = ? AND presenca_inscricao_id = ? AND presenca_data = ?", capID, insID, data).
		Count(&n).Error; err != nil {
		t.Fatalf("contando linhas: %v", err)
	}
	return n
}

func TestMarcarPresencaIdempotente(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(3)
	inscrito := uuid.New()
	dia := cap.CapacitacaoDataInicio

	for i := 0; i < 4; i++ {
		if err := svc.MarcarPresenca(context.Background(), cap, inscrito, dia); err != nil {
			t.Fatalf("marcação %d: %v", i+1, err)
		}
	}

	if n := contarLinhas(t, db, cap.CapacitacaoID, inscrito, dia); n != 1 {
		t.Fatalf("esperava exatamente 1 linha após 4 marcações, veio %d", n)
	}

	var p presModel.PresencaModel
	if err := db.First(&p, "presenca_capacitacao_id = ?", cap.CapacitacaoID).Error; err != nil {
		t.Fatalf("lendo linha: %v", err)
	}
	if !p.PresencaPresente {
		t.Fatal("linha deveria estar com presente=true")
	}
}

func TestMarcarPresencaDataForaDoPeriodo(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(3)
	inscrito := uuid.New()

	foraDoPeriodo := cap.CapacitacaoDataInicio.AddDate(0, 0, 10)
	err := svc.MarcarPresenca(context.Background(), cap, inscrito, foraDoPeriodo)
	if !errors.Is(err, ErrDataForaDoPeriodo) {
		t.Fatalf("esperava ErrDataForaDoPeriodo, veio %v", err)
	}
	if n := contarLinhas(t, db, cap.CapacitacaoID, inscrito, foraDoPeriodo); n != 0 {
		t.Fatalf("não deveria ter gravado nada, veio %d linhas", n)
	}
}

func TestMarcarPresencaIgnoraHorario(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(3)
	inscrito := uuid.New()

	// manhã e tarde do mesmo dia colapsam numa linha só
	manha := time.Date(2024, 3, 2, 8, 30, 0, 0, time.FixedZone("BRT", -3*3600))
	tarde := time.Date(2024, 3, 2, 14, 0, 0, 0, time.FixedZone("BRT", -3*3600))

	if err := svc.MarcarPresenca(context.Background(), cap, inscrito, manha); err != nil {
		t.Fatalf("manhã: %v", err)
	}
	if err := svc.MarcarPresenca(context.Background(), cap, inscrito, tarde); err != nil {
		t.Fatalf("tarde: %v", err)
	}

	dia := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if n := contarLinhas(t, db, cap.CapacitacaoID, inscrito, dia); n != 1 {
		t.Fatalf("check-ins do mesmo dia deveriam virar 1 linha, veio %d", n)
	}
}

func TestRemoverPresencaNoOp(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(1)

	// remover o que não existe não é erro
	if err := svc.RemoverPresenca(context.Background(), cap.CapacitacaoID, uuid.New(), cap.CapacitacaoDataInicio); err != nil {
		t.Fatalf("no-op deveria passar limpo: %v", err)
	}
}

func TestRemoverPresenca(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(1)
	inscrito := uuid.New()
	dia := cap.CapacitacaoDataInicio

	if err := svc.MarcarPresenca(context.Background(), cap, inscrito, dia); err != nil {
		t.Fatalf("marcando: %v", err)
	}
	if err := svc.RemoverPresenca(context.Background(), cap.CapacitacaoID, inscrito, dia); err != nil {
		t.Fatalf("removendo: %v", err)
	}
	if n := contarLinhas(t, db, cap.CapacitacaoID, inscrito, dia); n != 0 {
		t.Fatalf("linha deveria ter sumido, veio %d", n)
	}
}

func TestSubstituirDiaReconcilia(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(1)
	dia := cap.CapacitacaoDataInicio

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	ctx := context.Background()

	if err := svc.SubstituirDia(ctx, cap, dia, []uuid.UUID{a, b}); err != nil {
		t.Fatalf("primeiro snapshot: %v", err)
	}

	// guarda a PK de B para conferir que a linha não foi recriada
	var linhaB presModel.PresencaModel
	if err := db.First(&linhaB, "presenca_inscricao_id = ?", b).Error; err != nil {
		t.Fatalf("lendo linha de B: %v", err)
	}

	if err := svc.SubstituirDia(ctx, cap, dia, []uuid.UUID{b, c}); err != nil {
		t.Fatalf("segundo snapshot: %v", err)
	}

	rows, err := svc.ListarPorData(ctx, cap.CapacitacaoID, dia)
	if err != nil {
		t.Fatalf("listando: %v", err)
	}
	presentes := map[uuid.UUID]bool{}
	for _, p := range rows {
		presentes[p.PresencaInscricaoID] = true
	}
	if len(presentes) != 2 || !presentes[b] || !presentes[c] || presentes[a] {
		t.Fatalf("esperava exatamente {B,C}, veio %v", presentes)
	}

	var linhaBDepois presModel.PresencaModel
	if err := db.First(&linhaBDepois, "presenca_inscricao_id = ?", b).Error; err != nil {
		t.Fatalf("relendo linha de B: %v", err)
	}
	if linhaBDepois.PresencaID != linhaB.PresencaID {
		t.Fatal("linha de B foi recriada; deveria ter ficado intocada")
	}
}

func TestSubstituirDiaConjuntoVazio(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(1)
	dia := cap.CapacitacaoDataInicio
	ctx := context.Background()

	a := uuid.New()
	if err := svc.SubstituirDia(ctx, cap, dia, []uuid.UUID{a}); err != nil {
		t.Fatalf("snapshot inicial: %v", err)
	}
	if err := svc.SubstituirDia(ctx, cap, dia, nil); err != nil {
		t.Fatalf("snapshot vazio: %v", err)
	}
	rows, err := svc.ListarPorData(ctx, cap.CapacitacaoID, dia)
	if err != nil {
		t.Fatalf("listando: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("dia deveria ficar sem presenças, veio %d", len(rows))
	}
}

func TestListarPorInscritoCobreTodoOPeriodo(t *testing.T) {
	db := novoDBTeste(t)
	svc := NewPresencaService(db)
	cap := capTeste(3)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	dia1 := cap.CapacitacaoDataInicio
	dia2 := dia1.AddDate(0, 0, 1)

	// dia 1: A e B presentes; dia 2: só A; dia 3: ninguém
	for _, id := range []uuid.UUID{a, b} {
		if err := svc.MarcarPresenca(ctx, cap, id, dia1); err != nil {
			t.Fatalf("dia1 %s: %v", id, err)
		}
	}
	if err := svc.MarcarPresenca(ctx, cap, a, dia2); err != nil {
		t.Fatalf("dia2: %v", err)
	}

	freqA, err := svc.ListarPorInscrito(ctx, cap, a)
	if err != nil {
		t.Fatalf("frequência de A: %v", err)
	}
	if len(freqA) != 3 {
		t.Fatalf("esperava 3 dias, veio %d", len(freqA))
	}
	esperadoA := []bool{true, true, false}
	for i, f := range freqA {
		if f.Presente != esperadoA[i] {
			t.Errorf("A dia %d: presente=%v, esperava %v", i+1, f.Presente, esperadoA[i])
		}
		if i > 0 && !freqA[i-1].Data.Before(f.Data) {
			t.Errorf("datas fora de ordem: %v depois de %v", f.Data, freqA[i-1].Data)
		}
	}

	freqB, err := svc.ListarPorInscrito(ctx, cap, b)
	if err != nil {
		t.Fatalf("frequência de B: %v", err)
	}
	esperadoB := []bool{true, false, false}
	for i, f := range freqB {
		if f.Presente != esperadoB[i] {
			t.Errorf("B dia %d: presente=%v, esperava %v", i+1, f.Presente, esperadoB[i])
		}
	}
}
