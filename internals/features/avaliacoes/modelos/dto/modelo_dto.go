// file: internals/features/avaliacoes/modelos/dto/modelo_dto.go
package dto

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "capacita_backend/internals/features/avaliacoes/modelos/model"
)

/* ===================== Requests ===================== */

type CreatePerguntaRequest struct {
	Ordem       int      `json:"ordem" validate:"min=0"`
	Texto       string   `json:"texto" validate:"required,min=3"`
	Tipo        string   `json:"tipo" validate:"required,oneof=escala_1_5 escala_1_3 sim_nao_talvez sim_nao_parcialmente texto_livre"`
	Opcoes      []string `json:"opcoes,omitempty"`
	Obrigatoria bool     `json:"obrigatoria"`
}

type CreateModeloRequest struct {
	Titulo    string                  `json:"titulo" validate:"required,min=3,max=200"`
	Versao    *int                    `json:"versao,omitempty" validate:"omitempty,min=1"`
	Perguntas []CreatePerguntaRequest `json:"perguntas" validate:"required,min=1,dive"`
}

// OpcoesPadrao devolve as opções default de cada família quando o cliente
// não mandar nenhuma (texto livre não tem opções).
func OpcoesPadrao(tipo model.TipoPergunta) []string {
	switch tipo {
	case model.TipoPerguntaEscala15:
		return []string{"1", "2", "3", "4", "5"}
	case model.TipoPerguntaEscala13:
		return []string{"1", "2", "3"}
	case model.TipoPerguntaSimNaoTalvez:
		return []string{"Sim", "Não", "Talvez"}
	case model.TipoPerguntaSimNaoParcialmente:
		return []string{"Sim", "Não", "Parcialmente"}
	default:
		return nil
	}
}

func (r CreateModeloRequest) ToModel() model.ModeloAvaliacaoModel {
	versao := 1
	if r.Versao != nil {
		versao = *r.Versao
	}

	perguntas := make([]model.PerguntaModel, 0, len(r.Perguntas))
	for _, p := range r.Perguntas {
		tipo := model.TipoPergunta(p.Tipo)
		opcoes := p.Opcoes
		if len(opcoes) == 0 {
			opcoes = OpcoesPadrao(tipo)
		}
		if tipo.EhTextoLivre() {
			opcoes = nil
		}
		perguntas = append(perguntas, model.PerguntaModel{
			PerguntaOrdem:       p.Ordem,
			PerguntaTexto:       strings.TrimSpace(p.Texto),
			PerguntaTipo:        tipo,
			PerguntaOpcoes:      pq.StringArray(opcoes),
			PerguntaObrigatoria: p.Obrigatoria,
		})
	}
	sort.SliceStable(perguntas, func(i, j int) bool {
		return perguntas[i].PerguntaOrdem < perguntas[j].PerguntaOrdem
	})

	return model.ModeloAvaliacaoModel{
		ModeloTitulo:    strings.TrimSpace(r.Titulo),
		ModeloVersao:    versao,
		ModeloPerguntas: perguntas,
	}
}

/* ===================== Responses ===================== */

type PerguntaResponse struct {
	PerguntaID  uuid.UUID `json:"pergunta_id"`
	Ordem       int       `json:"ordem"`
	Texto       string    `json:"texto"`
	Tipo        string    `json:"tipo"`
	Opcoes      []string  `json:"opcoes,omitempty"`
	Obrigatoria bool      `json:"obrigatoria"`
}

type ModeloResponse struct {
	ModeloID  uuid.UUID          `json:"modelo_id"`
	Titulo    string             `json:"titulo"`
	Versao    int                `json:"versao"`
	Perguntas []PerguntaResponse `json:"perguntas"`
	CreatedAt time.Time          `json:"created_at"`
}

func FromModel(m model.ModeloAvaliacaoModel) ModeloResponse {
	perguntas := make([]PerguntaResponse, 0, len(m.ModeloPerguntas))
	for _, p := range m.ModeloPerguntas {
		perguntas = append(perguntas, PerguntaResponse{
			PerguntaID:  p.PerguntaID,
			Ordem:       p.PerguntaOrdem,
			Texto:       p.PerguntaTexto,
			Tipo:        string(p.PerguntaTipo),
			Opcoes:      []string(p.PerguntaOpcoes),
			Obrigatoria: p.PerguntaObrigatoria,
		})
	}
	return ModeloResponse{
		ModeloID:  m.ModeloID,
		Titulo:    m.ModeloTitulo,
		Versao:    m.ModeloVersao,
		Perguntas: perguntas,
		CreatedAt: m.ModeloCreatedAt,
	}
}
