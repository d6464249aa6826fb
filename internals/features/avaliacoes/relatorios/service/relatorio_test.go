package service

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
	respService "capacita_backend/internals/features/avaliacoes/respostas/service"
)

func novaPergunta(tipo modModel.TipoPergunta, opcoes ...string) modModel.PerguntaModel {
	return modModel.PerguntaModel{
		PerguntaID:     uuid.New(),
		PerguntaOrdem:  1,
		PerguntaTexto:  "Como você avalia o conteúdo?",
		PerguntaTipo:   tipo,
		PerguntaOpcoes: pq.StringArray(opcoes),
	}
}

func normalizarTodas(t *testing.T, p modModel.PerguntaModel, crus []string) []respService.RespostaNormalizada {
	t.Helper()
	out := make([]respService.RespostaNormalizada, 0, len(crus))
	for _, cru := range crus {
		n, err := respService.Normalizar(cru, p.PerguntaTipo, p.PerguntaOpcoes)
		if err != nil {
			t.Fatalf("Normalizar(%q): %v", cru, err)
		}
		out = append(out, n)
	}
	return out
}

func quaseIgual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAgregarPerguntaEscalaComNaoReconhecida(t *testing.T) {
	p := novaPergunta(modModel.TipoPerguntaEscala15, "1", "2", "3", "4", "5")
	normalizadas := normalizarTodas(t, p, []string{"1", "3", "3", "5", "abc"})

	est := AgregarPergunta(p, normalizadas)

	if est.TotalRespondentes != 5 {
		t.Fatalf("TotalRespondentes = %d, esperado 5", est.TotalRespondentes)
	}
	if est.Media == nil || !quaseIgual(*est.Media, 3.0) {
		t.Fatalf("Media = %v, esperado 3.0", est.Media)
	}
	if est.Distribuicao["3"] != 2 {
		t.Fatalf("Distribuicao[3] = %d, esperado 2", est.Distribuicao["3"])
	}
	if est.Distribuicao["abc"] != 1 {
		t.Fatalf("Distribuicao[abc] = %d, esperado 1", est.Distribuicao["abc"])
	}
	// opção declarada sem ocorrência aparece com zero
	if v, ok := est.Distribuicao["2"]; !ok || v != 0 {
		t.Fatalf("Distribuicao[2] = %d (ok=%v), esperado 0 presente", v, ok)
	}
}

func TestAgregarPerguntaSemRespostas(t *testing.T) {
	p := novaPergunta(modModel.TipoPerguntaEscala15, "1", "2", "3", "4", "5")

	est := AgregarPergunta(p, nil)

	if est.TotalRespondentes != 0 {
		t.Fatalf("TotalRespondentes = %d, esperado 0", est.TotalRespondentes)
	}
	if est.Media != nil {
		t.Fatalf("Media = %v, esperado ausente", *est.Media)
	}
	if len(est.Distribuicao) != 5 {
		t.Fatalf("Distribuicao com %d entradas, esperado 5 (todas zeradas)", len(est.Distribuicao))
	}
}

func TestAgregarPerguntaIgnoraNaoRespondidas(t *testing.T) {
	p := novaPergunta(modModel.TipoPerguntaSimNaoTalvez, "Sim", "Não", "Talvez")
	normalizadas := normalizarTodas(t, p, []string{"sim", "", "NÃO", "   "})

	est := AgregarPergunta(p, normalizadas)

	if est.TotalRespondentes != 2 {
		t.Fatalf("TotalRespondentes = %d, esperado 2", est.TotalRespondentes)
	}
	if est.Distribuicao["Sim"] != 1 || est.Distribuicao["Não"] != 1 || est.Distribuicao["Talvez"] != 0 {
		t.Fatalf("Distribuicao inesperada: %v", est.Distribuicao)
	}
	if est.Media != nil {
		t.Fatal("pergunta categórica não deve ter média")
	}
}

func TestAgregarPerguntaTextoLivre(t *testing.T) {
	p := novaPergunta(modModel.TipoPerguntaTextoLivre)
	normalizadas := normalizarTodas(t, p, []string{"Ótimo curso.", "", "Faltou prática."})

	est := AgregarPergunta(p, normalizadas)

	if est.TotalRespondentes != 2 {
		t.Fatalf("TotalRespondentes = %d, esperado 2", est.TotalRespondentes)
	}
	if len(est.Textos) != 2 || est.Textos[0] != "Ótimo curso." {
		t.Fatalf("Textos inesperados: %v", est.Textos)
	}
	if est.Distribuicao != nil {
		t.Fatal("texto livre não deve ter distribuição")
	}
}

func TestPercentualTotalZero(t *testing.T) {
	if got := Percentual(3, 0); got != 0 {
		t.Fatalf("Percentual(3, 0) = %v, esperado 0", got)
	}
	if got := Percentual(1, 4); !quaseIgual(got, 25.0) {
		t.Fatalf("Percentual(1, 4) = %v, esperado 25", got)
	}
}

func TestMontarRelatorioCompleto(t *testing.T) {
	escala := novaPergunta(modModel.TipoPerguntaEscala15, "1", "2", "3", "4", "5")
	catego := novaPergunta(modModel.TipoPerguntaSimNaoTalvez, "Sim", "Não", "Talvez")
	catego.PerguntaOrdem = 2
	modelo := modModel.ModeloAvaliacaoModel{
		ModeloID:        uuid.New(),
		ModeloTitulo:    "Avaliação padrão",
		ModeloVersao:    1,
		ModeloPerguntas: []modModel.PerguntaModel{escala, catego},
	}

	respostas := map[uuid.UUID][]string{
		escala.PerguntaID: {"1", "3", "3", "5", "abc"},
		catego.PerguntaID: {"sim", "sim", "talvez", "xyz"},
	}

	rel := MontarRelatorio(uuid.New(), modelo, respostas, 10, 5)

	if !quaseIgual(rel.TaxaResposta, 50.0) {
		t.Fatalf("TaxaResposta = %v, esperado 50", rel.TaxaResposta)
	}
	if len(rel.Perguntas) != 2 {
		t.Fatalf("Perguntas = %d, esperado 2", len(rel.Perguntas))
	}
	// uma única pergunta de escala: média geral igual à média dela
	if rel.MediaGeral == nil || !quaseIgual(*rel.MediaGeral, 3.0) {
		t.Fatalf("MediaGeral = %v, esperado 3.0", rel.MediaGeral)
	}

	// itens da escala: opções declaradas em ordem, extras no fim
	itens := rel.Perguntas[0].Itens
	if len(itens) != 6 {
		t.Fatalf("Itens = %d, esperado 6 (5 declaradas + abc)", len(itens))
	}
	if itens[0].Opcao != "1" || itens[4].Opcao != "5" || itens[5].Opcao != "abc" {
		t.Fatalf("ordem dos itens inesperada: %+v", itens)
	}
	if !quaseIgual(itens[2].Percentual, 40.0) { // "3" com 2 de 5
		t.Fatalf("Percentual de \"3\" = %v, esperado 40", itens[2].Percentual)
	}
}

func TestMontarRelatorioSemInscritos(t *testing.T) {
	modelo := modModel.ModeloAvaliacaoModel{
		ModeloID:     uuid.New(),
		ModeloTitulo: "Avaliação padrão",
		ModeloVersao: 1,
	}

	rel := MontarRelatorio(uuid.New(), modelo, nil, 0, 0)

	if rel.TaxaResposta != 0 {
		t.Fatalf("TaxaResposta = %v, esperado 0 sem inscritos", rel.TaxaResposta)
	}
	if rel.MediaGeral != nil {
		t.Fatal("MediaGeral deve ser ausente sem perguntas de escala")
	}
}

func TestMontarRelatorioPerguntaSemOpcoesEhIgnorada(t *testing.T) {
	quebrada := novaPergunta(modModel.TipoPerguntaSimNaoTalvez) // fechada, sem opções
	sadia := novaPergunta(modModel.TipoPerguntaEscala15, "1", "2", "3", "4", "5")
	sadia.PerguntaOrdem = 2
	modelo := modModel.ModeloAvaliacaoModel{
		ModeloID:        uuid.New(),
		ModeloTitulo:    "Avaliação padrão",
		ModeloVersao:    1,
		ModeloPerguntas: []modModel.PerguntaModel{quebrada, sadia},
	}

	respostas := map[uuid.UUID][]string{
		quebrada.PerguntaID: {"sim"},
		sadia.PerguntaID:    {"4", "4"},
	}

	rel := MontarRelatorio(uuid.New(), modelo, respostas, 2, 2)

	if len(rel.Perguntas) != 1 {
		t.Fatalf("Perguntas = %d, esperado 1 (a quebrada sai do relatório)", len(rel.Perguntas))
	}
	if rel.Perguntas[0].PerguntaID != sadia.PerguntaID {
		t.Fatal("pergunta errada sobreviveu ao relatório")
	}
	if rel.MediaGeral == nil || !quaseIgual(*rel.MediaGeral, 4.0) {
		t.Fatalf("MediaGeral = %v, esperado 4.0", rel.MediaGeral)
	}

	// mesmo sem nenhuma resposta a pergunta quebrada não pode aparecer
	relVazio := MontarRelatorio(uuid.New(), modelo, nil, 2, 0)
	if len(relVazio.Perguntas) != 1 {
		t.Fatalf("sem respostas: Perguntas = %d, esperado 1", len(relVazio.Perguntas))
	}
	if relVazio.Perguntas[0].PerguntaID != sadia.PerguntaID {
		t.Fatal("pergunta sem opções apareceu no relatório vazio")
	}
}
