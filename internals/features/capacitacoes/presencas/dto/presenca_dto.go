// file: internals/features/capacitacoes/presencas/dto/presenca_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	presModel "capacita_backend/internals/features/capacitacoes/presencas/model"
	presService "capacita_backend/internals/features/capacitacoes/presencas/service"
)

const LayoutData = "2006-01-02"

/* ===================== Requests ===================== */

type MarcarPresencaRequest struct {
	InscricaoID string `json:"inscricao_id" validate:"required,uuid4"`
	Data        string `json:"data" validate:"required,datetime=2006-01-02"`
}

type RemoverPresencaRequest struct {
	InscricaoID string `json:"inscricao_id" validate:"required,uuid4"`
	Data        string `json:"data" validate:"required,datetime=2006-01-02"`
}

// SubstituirDiaRequest carrega o conjunto COMPLETO de presentes do dia;
// quem estiver fora da lista perde o registro.
type SubstituirDiaRequest struct {
	Data         string   `json:"data" validate:"required,datetime=2006-01-02"`
	InscricaoIDs []string `json:"inscricao_ids" validate:"required,dive,uuid4"`
}

/* ===================== Responses ===================== */

type PresencaResponse struct {
	PresencaID    uuid.UUID `json:"presenca_id"`
	CapacitacaoID uuid.UUID `json:"capacitacao_id"`
	InscricaoID   uuid.UUID `json:"inscricao_id"`
	Data          string    `json:"data"`
	Presente      bool      `json:"presente"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromModel(m presModel.PresencaModel) PresencaResponse {
	return PresencaResponse{
		PresencaID:    m.PresencaID,
		CapacitacaoID: m.PresencaCapacitacaoID,
		InscricaoID:   m.PresencaInscricaoID,
		Data:          m.PresencaData.Format(LayoutData),
		Presente:      m.PresencaPresente,
		CreatedAt:     m.PresencaCreatedAt,
	}
}

func FromModels(ms []presModel.PresencaModel) []PresencaResponse {
	out := make([]PresencaResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

type FrequenciaResponse struct {
	Data     string `json:"data"`
	Presente bool   `json:"presente"`
}

func FromFrequencia(fs []presService.FrequenciaInscrito) []FrequenciaResponse {
	out := make([]FrequenciaResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, FrequenciaResponse{
			Data:     f.Data.Format(LayoutData),
			Presente: f.Presente,
		})
	}
	return out
}
