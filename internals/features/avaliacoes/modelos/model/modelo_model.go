package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   Enums (alinhados com o DB)
========================= */

// TipoPergunta decide a regra de normalização e de agregação da resposta.
type TipoPergunta string

const (
	TipoPerguntaEscala15           TipoPergunta = "escala_1_5"
	TipoPerguntaEscala13           TipoPergunta = "escala_1_3"
	TipoPerguntaSimNaoTalvez       TipoPergunta = "sim_nao_talvez"
	TipoPerguntaSimNaoParcialmente TipoPergunta = "sim_nao_parcialmente"
	TipoPerguntaTextoLivre         TipoPergunta = "texto_livre"
)

// EhEscala: escalas carregam semântica numérico-ordinal mesmo com as opções
// gravadas como rótulos ("1".."5").
func (t TipoPergunta) EhEscala() bool {
	return t == TipoPerguntaEscala15 || t == TipoPerguntaEscala13
}

func (t TipoPergunta) EhCategorica() bool {
	return t == TipoPerguntaSimNaoTalvez || t == TipoPerguntaSimNaoParcialmente
}

func (t TipoPergunta) EhTextoLivre() bool {
	return t == TipoPerguntaTextoLivre
}

func TipoPerguntaValido(s string) bool {
	switch TipoPergunta(s) {
	case TipoPerguntaEscala15, TipoPerguntaEscala13, TipoPerguntaSimNaoTalvez,
		TipoPerguntaSimNaoParcialmente, TipoPerguntaTextoLivre:
		return true
	}
	return false
}

/* =========================================
   Model: avaliacao_modelos (formulário versionado, imutável)
========================================= */

type ModeloAvaliacaoModel struct {
	// PK
	ModeloID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:modelo_id" json:"modelo_id"`

	ModeloTitulo string `gorm:"type:varchar(200);not null;column:modelo_titulo" json:"modelo_titulo"`
	ModeloVersao int    `gorm:"not null;default:1;column:modelo_versao" json:"modelo_versao"`

	// Perguntas ordenadas do formulário
	ModeloPerguntas []PerguntaModel `gorm:"foreignKey:PerguntaModeloID;references:ModeloID" json:"modelo_perguntas,omitempty"`

	// Audit
	ModeloCreatedAt time.Time      `gorm:"not null;default:now();column:modelo_created_at" json:"modelo_created_at"`
	ModeloUpdatedAt time.Time      `gorm:"not null;default:now();column:modelo_updated_at" json:"modelo_updated_at"`
	ModeloDeletedAt gorm.DeletedAt `gorm:"column:modelo_deleted_at;index" json:"modelo_deleted_at,omitempty"`
}

func (ModeloAvaliacaoModel) TableName() string {
	return "avaliacao_modelos"
}

/* =========================================
   Model: avaliacao_perguntas
========================================= */

type PerguntaModel struct {
	// PK
	PerguntaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:pergunta_id" json:"pergunta_id"`

	// Relação
	PerguntaModeloID uuid.UUID `gorm:"type:uuid;not null;index;column:pergunta_modelo_id" json:"pergunta_modelo_id"`

	PerguntaOrdem int          `gorm:"not null;default:0;column:pergunta_ordem" json:"pergunta_ordem"`
	PerguntaTexto string       `gorm:"type:text;not null;column:pergunta_texto" json:"pergunta_texto"`
	PerguntaTipo  TipoPergunta `gorm:"type:varchar(30);not null;column:pergunta_tipo" json:"pergunta_tipo"`

	// Opções permitidas (obrigatórias para todo tipo que não seja texto livre)
	PerguntaOpcoes pq.StringArray `gorm:"type:text[];column:pergunta_opcoes" json:"pergunta_opcoes,omitempty"`

	PerguntaObrigatoria bool `gorm:"not null;default:false;column:pergunta_obrigatoria" json:"pergunta_obrigatoria"`

	// Audit
	PerguntaCreatedAt time.Time `gorm:"not null;default:now();column:pergunta_created_at" json:"pergunta_created_at"`
}

func (PerguntaModel) TableName() string {
	return "avaliacao_perguntas"
}
