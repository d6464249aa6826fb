package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: presencas

   Uma linha por (capacitação, inscrição, data de calendário).
   O índice único é quem garante a idempotência do upsert;
   ausência é representada pela ausência da linha, não por
   uma linha com presente=false.
========================================= */

type PresencaModel struct {
	// PK (gerado na aplicação; linhas de presença nascem sempre em código)
	PresencaID uuid.UUID `gorm:"type:uuid;primaryKey;column:presenca_id" json:"presenca_id"`

	// Chave natural
	PresencaCapacitacaoID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_presenca_chave;column:presenca_capacitacao_id" json:"presenca_capacitacao_id"`
	PresencaInscricaoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_presenca_chave;column:presenca_inscricao_id" json:"presenca_inscricao_id"`
	PresencaData          time.Time `gorm:"type:date;not null;uniqueIndex:uq_presenca_chave;column:presenca_data" json:"presenca_data"`

	PresencaPresente bool `gorm:"not null;default:true;column:presenca_presente" json:"presenca_presente"`

	// Audit (sempre preenchido pelo service; sem default de função no DB,
	// o schema precisa migrar igual em Postgres e no sqlite dos testes)
	PresencaCreatedAt time.Time `gorm:"not null;column:presenca_created_at" json:"presenca_created_at"`
	PresencaUpdatedAt time.Time `gorm:"not null;column:presenca_updated_at" json:"presenca_updated_at"`
}

func (PresencaModel) TableName() string {
	return "presencas"
}

func (m *PresencaModel) BeforeCreate(tx *gorm.DB) error {
	if m.PresencaID == uuid.Nil {
		m.PresencaID = uuid.New()
	}
	return nil
}
