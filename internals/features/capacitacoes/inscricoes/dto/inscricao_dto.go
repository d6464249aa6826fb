// file: internals/features/capacitacoes/inscricoes/dto/inscricao_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "capacita_backend/internals/features/capacitacoes/inscricoes/model"
)

/* ===================== Requests ===================== */

type CreateInscricaoRequest struct {
	Nome  string  `json:"nome" validate:"required,min=3,max=200"`
	Email string  `json:"email" validate:"required,email,max=200"`
	Orgao *string `json:"orgao,omitempty" validate:"omitempty,max=200"`
}

func (r CreateInscricaoRequest) ToModel(capacitacaoID uuid.UUID) model.InscricaoModel {
	return model.InscricaoModel{
		InscricaoCapacitacaoID: capacitacaoID,
		InscricaoNome:          strings.TrimSpace(r.Nome),
		InscricaoEmail:         strings.ToLower(strings.TrimSpace(r.Email)),
		InscricaoOrgao:         r.Orgao,
	}
}

type PatchInscricaoRequest struct {
	Nome  *string `json:"nome,omitempty" validate:"omitempty,min=3,max=200"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=200"`
	Orgao *string `json:"orgao,omitempty" validate:"omitempty,max=200"`
}

type ListInscricaoQuery struct {
	Search string `query:"search"`
}

/* ===================== Responses ===================== */

type InscricaoResponse struct {
	InscricaoID   uuid.UUID `json:"inscricao_id"`
	CapacitacaoID uuid.UUID `json:"capacitacao_id"`
	Nome          string    `json:"nome"`
	Email         string    `json:"email"`
	Orgao         *string   `json:"orgao,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromModel(m model.InscricaoModel) InscricaoResponse {
	return InscricaoResponse{
		InscricaoID:   m.InscricaoID,
		CapacitacaoID: m.InscricaoCapacitacaoID,
		Nome:          m.InscricaoNome,
		Email:         m.InscricaoEmail,
		Orgao:         m.InscricaoOrgao,
		CreatedAt:     m.InscricaoCreatedAt,
	}
}

func FromModels(ms []model.InscricaoModel) []InscricaoResponse {
	out := make([]InscricaoResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
