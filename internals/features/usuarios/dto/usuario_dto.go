// file: internals/features/usuarios/dto/usuario_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	usrModel "capacita_backend/internals/features/usuarios/model"
)

/* =========================
   Requests
========================= */

type RegisterRequest struct {
	Nome  string `json:"nome" validate:"required,min=3,max=200"`
	Email string `json:"email" validate:"required,email,max=200"`
	Senha string `json:"senha" validate:"required,min=8,max=72"`
	Papel string `json:"papel" validate:"omitempty,oneof=admin gestor"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

func (r RegisterRequest) ToModel(senhaHash string) usrModel.UsuarioModel {
	papel := usrModel.PapelGestor
	if r.Papel != "" {
		papel = usrModel.PapelUsuario(r.Papel)
	}
	return usrModel.UsuarioModel{
		UsuarioNome:  strings.TrimSpace(r.Nome),
		UsuarioEmail: strings.ToLower(strings.TrimSpace(r.Email)),
		UsuarioSenha: senhaHash,
		UsuarioPapel: papel,
	}
}

/* =========================
   Responses
========================= */

type UsuarioResponse struct {
	UsuarioID uuid.UUID              `json:"usuario_id"`
	Nome      string                 `json:"nome"`
	Email     string                 `json:"email"`
	Papel     usrModel.PapelUsuario  `json:"papel"`
	Ativo     bool                   `json:"ativo"`
	CreatedAt time.Time              `json:"created_at"`
}

func FromModel(m usrModel.UsuarioModel) UsuarioResponse {
	return UsuarioResponse{
		UsuarioID: m.UsuarioID,
		Nome:      m.UsuarioNome,
		Email:     m.UsuarioEmail,
		Papel:     m.UsuarioPapel,
		Ativo:     m.UsuarioAtivo,
		CreatedAt: m.UsuarioCreatedAt,
	}
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Usuario      UsuarioResponse `json:"usuario"`
}
