// file: internals/features/avaliacoes/relatorios/service/estatisticas.go
package service

import (
	"strconv"

	"github.com/google/uuid"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
	respService "capacita_backend/internals/features/avaliacoes/respostas/service"
)

// EstatisticasPergunta é derivada, nunca persistida: função pura das
// respostas de uma pergunta, recalculada a cada pedido.
type EstatisticasPergunta struct {
	PerguntaID        uuid.UUID               `json:"pergunta_id"`
	Ordem             int                     `json:"ordem"`
	Texto             string                  `json:"texto"`
	Tipo              modModel.TipoPergunta   `json:"tipo"`
	TotalRespondentes int                     `json:"total_respondentes"`
	Media             *float64                `json:"media,omitempty"`
	// Distribuicao não tem ordem; quem apresenta decide o critério
	// (normalmente a ordem de declaração das opções).
	Distribuicao map[string]int `json:"distribuicao,omitempty"`
	// Textos: texto livre nunca é resumido além da contagem; vai verbatim.
	Textos []string `json:"textos,omitempty"`
}

// AgregarPergunta consome as respostas já normalizadas de UMA pergunta.
//
// - total_respondentes: respostas que não são o sentinela "não respondida".
// - escalas: média aritmética dos rótulos numéricos parseáveis; resposta que
//   não parseia fica fora da média mas continua na distribuição e no total.
//   Zero respostas parseáveis → média ausente (nil), nunca zero nem erro.
// - categóricas: distribuição rótulo→contagem, incluindo opções declaradas
//   com contagem zero; valores não reconhecidos entram com o valor original.
// - texto livre: lista verbatim, sem distribuição.
func AgregarPergunta(pergunta modModel.PerguntaModel, normalizadas []respService.RespostaNormalizada) EstatisticasPergunta {
	est := EstatisticasPergunta{
		PerguntaID: pergunta.PerguntaID,
		Ordem:      pergunta.PerguntaOrdem,
		Texto:      pergunta.PerguntaTexto,
		Tipo:       pergunta.PerguntaTipo,
	}

	if pergunta.PerguntaTipo.EhTextoLivre() {
		for _, r := range normalizadas {
			if r.NaoRespondida {
				continue
			}
			est.TotalRespondentes++
			est.Textos = append(est.Textos, r.Valor)
		}
		return est
	}

	// opções declaradas entram com contagem zero; nunca são omitidas
	est.Distribuicao = make(map[string]int, len(pergunta.PerguntaOpcoes))
	for _, op := range pergunta.PerguntaOpcoes {
		est.Distribuicao[op] = 0
	}

	var soma float64
	var parseaveis int
	for _, r := range normalizadas {
		if r.NaoRespondida {
			continue
		}
		est.TotalRespondentes++
		est.Distribuicao[r.Valor]++

		if pergunta.PerguntaTipo.EhEscala() && !r.NaoReconhecida {
			if v, err := strconv.ParseFloat(r.Valor, 64); err == nil {
				soma += v
				parseaveis++
			}
		}
	}

	if pergunta.PerguntaTipo.EhEscala() && parseaveis > 0 {
		media := soma / float64(parseaveis)
		est.Media = &media
	}
	return est
}

// Percentual é a fórmula que toda tela repetia: count/total*100,
// definida como 0 quando total é 0 (nunca divide por zero).
func Percentual(quantidade, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(quantidade) / float64(total) * 100
}
