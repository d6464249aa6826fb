// file: internals/features/avaliacoes/relatorios/service/relatorio.go
package service

import (
	"errors"
	"log"
	"sort"

	"github.com/google/uuid"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
	respService "capacita_backend/internals/features/avaliacoes/respostas/service"
)

/* =========================
   Tipos do relatório
========================= */

// ItemDistribuicao é uma linha pronta para a tela: rótulo, contagem e
// percentual sobre os respondentes da pergunta.
type ItemDistribuicao struct {
	Opcao      string  `json:"opcao"`
	Quantidade int     `json:"quantidade"`
	Percentual float64 `json:"percentual"`
}

type PerguntaRelatorio struct {
	EstatisticasPergunta
	// Itens repete Distribuicao em ordem estável: opções declaradas
	// primeiro (na ordem do formulário), depois valores não reconhecidos
	// em ordem alfabética.
	Itens []ItemDistribuicao `json:"itens,omitempty"`
}

type RelatorioAvaliacao struct {
	CapacitacaoID   uuid.UUID           `json:"capacitacao_id"`
	ModeloID        uuid.UUID           `json:"modelo_id"`
	ModeloTitulo    string              `json:"modelo_titulo"`
	ModeloVersao    int                 `json:"modelo_versao"`
	TotalInscritos  int                 `json:"total_inscritos"`
	TotalAvaliacoes int                 `json:"total_avaliacoes"`
	// TaxaResposta em percentual (0..100); 0 quando não há inscritos.
	TaxaResposta float64             `json:"taxa_resposta"`
	MediaGeral   *float64            `json:"media_geral,omitempty"`
	Perguntas    []PerguntaRelatorio `json:"perguntas"`
}

/* =========================
   Montagem
========================= */

// MontarRelatorio é pura: recebe o modelo (com perguntas ordenadas) e as
// respostas cruas por pergunta, devolve o relatório completo. Quem busca
// os dados é o controller; aqui não entra *gorm.DB.
//
// Pergunta fechada sem opções declaradas é dado corrompido: sai do
// relatório com log de erro, sem derrubar o resto.
func MontarRelatorio(
	capacitacaoID uuid.UUID,
	modelo modModel.ModeloAvaliacaoModel,
	respostasPorPergunta map[uuid.UUID][]string,
	totalInscritos int,
	totalAvaliacoes int,
) RelatorioAvaliacao {
	rel := RelatorioAvaliacao{
		CapacitacaoID:   capacitacaoID,
		ModeloID:        modelo.ModeloID,
		ModeloTitulo:    modelo.ModeloTitulo,
		ModeloVersao:    modelo.ModeloVersao,
		TotalInscritos:  totalInscritos,
		TotalAvaliacoes: totalAvaliacoes,
		TaxaResposta:    Percentual(totalAvaliacoes, totalInscritos),
		Perguntas:       make([]PerguntaRelatorio, 0, len(modelo.ModeloPerguntas)),
	}

	var somaMedias float64
	var perguntasComMedia int

	for _, p := range modelo.ModeloPerguntas {
		// pergunta fechada sem opções é detectada antes do loop de
		// respostas; com zero respostas ela também precisa sair do relatório
		if !p.PerguntaTipo.EhTextoLivre() && len(p.PerguntaOpcoes) == 0 {
			log.Printf("[ERROR] relatório: pergunta %s (%q) sem opções declaradas; ignorada", p.PerguntaID, p.PerguntaTexto)
			continue
		}

		crus := respostasPorPergunta[p.PerguntaID]

		normalizadas := make([]respService.RespostaNormalizada, 0, len(crus))
		corrompida := false
		for _, cru := range crus {
			n, err := respService.Normalizar(cru, p.PerguntaTipo, p.PerguntaOpcoes)
			if err != nil {
				if errors.Is(err, respService.ErrOpcoesAusentes) {
					log.Printf("[ERROR] relatório: pergunta %s (%q) sem opções declaradas; ignorada", p.PerguntaID, p.PerguntaTexto)
					corrompida = true
					break
				}
				log.Printf("[ERROR] relatório: falha ao normalizar resposta da pergunta %s: %v", p.PerguntaID, err)
				continue
			}
			normalizadas = append(normalizadas, n)
		}
		if corrompida {
			continue
		}

		est := AgregarPergunta(p, normalizadas)
		item := PerguntaRelatorio{
			EstatisticasPergunta: est,
			Itens:                montarItens(p.PerguntaOpcoes, est),
		}
		rel.Perguntas = append(rel.Perguntas, item)

		if est.Media != nil {
			somaMedias += *est.Media
			perguntasComMedia++
		}
	}

	// média geral: média das médias por pergunta de escala; perguntas sem
	// média (zero respostas parseáveis) ficam de fora sem zerar o resultado
	if perguntasComMedia > 0 {
		mg := somaMedias / float64(perguntasComMedia)
		rel.MediaGeral = &mg
	}
	return rel
}

func montarItens(opcoes []string, est EstatisticasPergunta) []ItemDistribuicao {
	if est.Distribuicao == nil {
		return nil
	}

	itens := make([]ItemDistribuicao, 0, len(est.Distribuicao))
	vistos := make(map[string]bool, len(opcoes))
	for _, op := range opcoes {
		if vistos[op] {
			continue
		}
		vistos[op] = true
		itens = append(itens, ItemDistribuicao{
			Opcao:      op,
			Quantidade: est.Distribuicao[op],
			Percentual: Percentual(est.Distribuicao[op], est.TotalRespondentes),
		})
	}

	// valores fora da lista declarada: ordem alfabética para saída estável
	extras := make([]string, 0)
	for valor := range est.Distribuicao {
		if !vistos[valor] {
			extras = append(extras, valor)
		}
	}
	sort.Strings(extras)
	for _, valor := range extras {
		itens = append(itens, ItemDistribuicao{
			Opcao:      valor,
			Quantidade: est.Distribuicao[valor],
			Percentual: Percentual(est.Distribuicao[valor], est.TotalRespondentes),
		})
	}
	return itens
}
