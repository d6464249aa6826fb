// file: internals/features/avaliacoes/respostas/dto/resposta_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Requests ===================== */

// RespostaItemRequest carrega OU texto OU opção, nunca os dois.
type RespostaItemRequest struct {
	PerguntaID string  `json:"pergunta_id" validate:"required,uuid4"`
	Opcao      *string `json:"opcao,omitempty" validate:"omitempty,max=200"`
	Texto      *string `json:"texto,omitempty" validate:"omitempty,max=8000"`
}

type SubmeterAvaliacaoRequest struct {
	ModeloID    string                `json:"modelo_id" validate:"required,uuid4"`
	InscricaoID *string               `json:"inscricao_id,omitempty" validate:"omitempty,uuid4"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Respostas   []RespostaItemRequest `json:"respostas" validate:"required,min=1,dive"`
}

func (r SubmeterAvaliacaoRequest) MetadataJSON() datatypes.JSONMap {
	if len(r.Metadata) == 0 {
		return nil
	}
	return datatypes.JSONMap(r.Metadata)
}

/* ===================== Responses ===================== */

type AvaliacaoResponse struct {
	AvaliacaoID   uuid.UUID  `json:"avaliacao_id"`
	CapacitacaoID uuid.UUID  `json:"capacitacao_id"`
	ModeloID      uuid.UUID  `json:"modelo_id"`
	InscricaoID   *uuid.UUID `json:"inscricao_id,omitempty"`
	TotalItens    int        `json:"total_itens"`
	CreatedAt     time.Time  `json:"created_at"`
}
