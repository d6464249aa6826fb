package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Papel do operador no subsistema. "admin" gerencia capacitações e
// modelos; "gestor" só consulta relatórios.
type PapelUsuario string

const (
	PapelAdmin  PapelUsuario = "admin"
	PapelGestor PapelUsuario = "gestor"
)

type UsuarioModel struct {
	// PK
	UsuarioID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:usuario_id" json:"usuario_id"`

	UsuarioNome  string `gorm:"type:varchar(200);not null;column:usuario_nome" json:"usuario_nome"`
	UsuarioEmail string `gorm:"type:varchar(200);not null;uniqueIndex:uq_usuario_email;column:usuario_email" json:"usuario_email"`

	// Hash bcrypt; nunca sai no JSON
	UsuarioSenha string `gorm:"type:varchar(100);not null;column:usuario_senha" json:"-"`

	UsuarioPapel PapelUsuario `gorm:"type:varchar(20);not null;default:'gestor';column:usuario_papel" json:"usuario_papel"`
	UsuarioAtivo bool         `gorm:"not null;default:true;column:usuario_ativo" json:"usuario_ativo"`

	// Audit
	UsuarioCreatedAt time.Time      `gorm:"not null;default:now();column:usuario_created_at" json:"usuario_created_at"`
	UsuarioUpdatedAt time.Time      `gorm:"not null;default:now();column:usuario_updated_at" json:"usuario_updated_at"`
	UsuarioDeletedAt gorm.DeletedAt `gorm:"column:usuario_deleted_at;index" json:"usuario_deleted_at,omitempty"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
