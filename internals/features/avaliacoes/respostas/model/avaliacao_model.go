package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================
   Model: avaliacoes (uma submissão de formulário)
========================================= */

type AvaliacaoModel struct {
	// PK
	AvaliacaoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:avaliacao_id" json:"avaliacao_id"`

	// Relações
	AvaliacaoCapacitacaoID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_avaliacao_inscricao;column:avaliacao_capacitacao_id" json:"avaliacao_capacitacao_id"`
	AvaliacaoModeloID      uuid.UUID  `gorm:"type:uuid;not null;index;column:avaliacao_modelo_id" json:"avaliacao_modelo_id"`
	AvaliacaoInscricaoID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_avaliacao_inscricao;column:avaliacao_inscricao_id" json:"avaliacao_inscricao_id,omitempty"`

	// Snapshot livre do cliente (user-agent, origem etc)
	AvaliacaoMetadata datatypes.JSONMap `gorm:"type:jsonb;column:avaliacao_metadata" json:"avaliacao_metadata,omitempty"`

	// Audit
	AvaliacaoCreatedAt time.Time `gorm:"not null;default:now();column:avaliacao_created_at" json:"avaliacao_created_at"`
}

func (AvaliacaoModel) TableName() string {
	return "avaliacoes"
}

/* =========================================
   Model: avaliacao_respostas

   Uma resposta referencia exatamente uma pergunta e carrega OU texto livre
   OU uma opção selecionada, nunca os dois. O valor cru é gravado como veio;
   normalização acontece só na hora de agregar.
========================================= */

type RespostaModel struct {
	// PK
	RespostaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:resposta_id" json:"resposta_id"`

	// Relações
	RespostaAvaliacaoID uuid.UUID `gorm:"type:uuid;not null;index;column:resposta_avaliacao_id" json:"resposta_avaliacao_id"`
	RespostaPerguntaID  uuid.UUID `gorm:"type:uuid;not null;index;column:resposta_pergunta_id" json:"resposta_pergunta_id"`

	RespostaValorTexto *string `gorm:"type:text;column:resposta_valor_texto" json:"resposta_valor_texto,omitempty"`
	RespostaOpcao      *string `gorm:"type:varchar(200);column:resposta_opcao" json:"resposta_opcao,omitempty"`

	// Audit
	RespostaCreatedAt time.Time `gorm:"not null;default:now();column:resposta_created_at" json:"resposta_created_at"`
}

func (RespostaModel) TableName() string {
	return "avaliacao_respostas"
}

// ValorCru devolve o que o respondente mandou, seja texto ou opção.
func (r RespostaModel) ValorCru() string {
	if r.RespostaOpcao != nil {
		return *r.RespostaOpcao
	}
	if r.RespostaValorTexto != nil {
		return *r.RespostaValorTexto
	}
	return ""
}
