package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (alinhados com o DB)
========================= */

type StatusCapacitacao string

const (
	StatusCapacitacaoPlanejada   StatusCapacitacao = "planejada"
	StatusCapacitacaoEmAndamento StatusCapacitacao = "em_andamento"
	StatusCapacitacaoConcluida   StatusCapacitacao = "concluida"
	StatusCapacitacaoCancelada   StatusCapacitacao = "cancelada"
)

/* =========================================
   Model: capacitacoes
========================================= */

type CapacitacaoModel struct {
	// PK
	CapacitacaoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:capacitacao_id" json:"capacitacao_id"`

	// Identificação
	CapacitacaoTitulo    string  `gorm:"type:varchar(200);not null;column:capacitacao_titulo" json:"capacitacao_titulo"`
	CapacitacaoSlug      *string `gorm:"type:varchar(160);column:capacitacao_slug" json:"capacitacao_slug,omitempty"`
	CapacitacaoDescricao *string `gorm:"type:text;column:capacitacao_descricao" json:"capacitacao_descricao,omitempty"`
	CapacitacaoLocal     *string `gorm:"type:varchar(200);column:capacitacao_local" json:"capacitacao_local,omitempty"`

	// Período (datas de calendário; hora/fuso são irrelevantes aqui)
	CapacitacaoDataInicio time.Time  `gorm:"type:date;not null;column:capacitacao_data_inicio" json:"capacitacao_data_inicio"`
	CapacitacaoDataFim    *time.Time `gorm:"type:date;column:capacitacao_data_fim" json:"capacitacao_data_fim,omitempty"`

	// Lifecycle
	CapacitacaoStatus StatusCapacitacao `gorm:"type:varchar(20);not null;default:'planejada';column:capacitacao_status" json:"capacitacao_status"`

	// Audit
	CapacitacaoCreatedAt time.Time      `gorm:"not null;default:now();column:capacitacao_created_at" json:"capacitacao_created_at"`
	CapacitacaoUpdatedAt time.Time      `gorm:"not null;default:now();column:capacitacao_updated_at" json:"capacitacao_updated_at"`
	CapacitacaoDeletedAt gorm.DeletedAt `gorm:"column:capacitacao_deleted_at;index" json:"capacitacao_deleted_at,omitempty"`
}

func (CapacitacaoModel) TableName() string {
	return "capacitacoes"
}
