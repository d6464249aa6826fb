package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: inscricoes (inscrito em uma capacitação)
========================================= */

type InscricaoModel struct {
	// PK
	InscricaoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:inscricao_id" json:"inscricao_id"`

	// Relação principal
	InscricaoCapacitacaoID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_inscricao_email;column:inscricao_capacitacao_id" json:"inscricao_capacitacao_id"`

	// Dados do inscrito
	InscricaoNome  string  `gorm:"type:varchar(200);not null;column:inscricao_nome" json:"inscricao_nome"`
	InscricaoEmail string  `gorm:"type:varchar(200);not null;uniqueIndex:uq_inscricao_email;column:inscricao_email" json:"inscricao_email"`
	InscricaoOrgao *string `gorm:"type:varchar(200);column:inscricao_orgao" json:"inscricao_orgao,omitempty"`

	// Audit
	InscricaoCreatedAt time.Time      `gorm:"not null;default:now();column:inscricao_created_at" json:"inscricao_created_at"`
	InscricaoUpdatedAt time.Time      `gorm:"not null;default:now();column:inscricao_updated_at" json:"inscricao_updated_at"`
	InscricaoDeletedAt gorm.DeletedAt `gorm:"column:inscricao_deleted_at;index" json:"inscricao_deleted_at,omitempty"`
}

func (InscricaoModel) TableName() string {
	return "inscricoes"
}
