// file: internals/features/capacitacoes/capacitacao/dto/capacitacao_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "capacita_backend/internals/features/capacitacoes/capacitacao/model"
)

const LayoutData = "2006-01-02"

/* ===================== Requests ===================== */

type CreateCapacitacaoRequest struct {
	Titulo     string  `json:"titulo" validate:"required,min=3,max=200"`
	Descricao  *string `json:"descricao,omitempty" validate:"omitempty,max=4000"`
	Local      *string `json:"local,omitempty" validate:"omitempty,max=200"`
	DataInicio string  `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	DataFim    *string `json:"data_fim,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=planejada em_andamento concluida cancelada"`
}

func (r CreateCapacitacaoRequest) ToModel() (model.CapacitacaoModel, error) {
	ini, err := time.Parse(LayoutData, strings.TrimSpace(r.DataInicio))
	if err != nil {
		return model.CapacitacaoModel{}, err
	}

	m := model.CapacitacaoModel{
		CapacitacaoTitulo:     strings.TrimSpace(r.Titulo),
		CapacitacaoDescricao:  r.Descricao,
		CapacitacaoLocal:      r.Local,
		CapacitacaoDataInicio: ini,
		CapacitacaoStatus:     model.StatusCapacitacaoPlanejada,
	}
	if r.DataFim != nil && strings.TrimSpace(*r.DataFim) != "" {
		fim, err := time.Parse(LayoutData, strings.TrimSpace(*r.DataFim))
		if err != nil {
			return model.CapacitacaoModel{}, err
		}
		m.CapacitacaoDataFim = &fim
	}
	if r.Status != nil {
		m.CapacitacaoStatus = model.StatusCapacitacao(*r.Status)
	}
	return m, nil
}

type PatchCapacitacaoRequest struct {
	Titulo     *string `json:"titulo,omitempty" validate:"omitempty,min=3,max=200"`
	Descricao  *string `json:"descricao,omitempty" validate:"omitempty,max=4000"`
	Local      *string `json:"local,omitempty" validate:"omitempty,max=200"`
	DataInicio *string `json:"data_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DataFim    *string `json:"data_fim,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=planejada em_andamento concluida cancelada"`
}

type ListCapacitacaoQuery struct {
	Search string `query:"search"`
	Status string `query:"status"`
}

/* ===================== Responses ===================== */

type CapacitacaoResponse struct {
	CapacitacaoID uuid.UUID `json:"capacitacao_id"`
	Titulo        string    `json:"titulo"`
	Slug          *string   `json:"slug,omitempty"`
	Descricao     *string   `json:"descricao,omitempty"`
	Local         *string   `json:"local,omitempty"`
	DataInicio    string    `json:"data_inicio"`
	DataFim       *string   `json:"data_fim,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromModel(m model.CapacitacaoModel) CapacitacaoResponse {
	resp := CapacitacaoResponse{
		CapacitacaoID: m.CapacitacaoID,
		Titulo:        m.CapacitacaoTitulo,
		Slug:          m.CapacitacaoSlug,
		Descricao:     m.CapacitacaoDescricao,
		Local:         m.CapacitacaoLocal,
		DataInicio:    m.CapacitacaoDataInicio.Format(LayoutData),
		Status:        string(m.CapacitacaoStatus),
		CreatedAt:     m.CapacitacaoCreatedAt,
		UpdatedAt:     m.CapacitacaoUpdatedAt,
	}
	if m.CapacitacaoDataFim != nil {
		f := m.CapacitacaoDataFim.Format(LayoutData)
		resp.DataFim = &f
	}
	return resp
}

func FromModels(ms []model.CapacitacaoModel) []CapacitacaoResponse {
	out := make([]CapacitacaoResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
