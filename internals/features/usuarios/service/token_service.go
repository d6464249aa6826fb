// file: internals/features/usuarios/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"capacita_backend/internals/configs"
	usrModel "capacita_backend/internals/features/usuarios/model"
)

const (
	accessTTL  = 15 * time.Minute
	refreshTTL = 7 * 24 * time.Hour
)

var ErrSegredoAusente = errors.New("JWT_SECRET não configurado")

// EmitirTokens assina o par access/refresh com HS256. O claim de
// identidade é "usuario_id"; "sub" vai junto por compatibilidade com
// clientes que leem o claim padrão.
func EmitirTokens(u usrModel.UsuarioModel) (access string, refresh string, err error) {
	if configs.JWTSecret == "" {
		return "", "", ErrSegredoAusente
	}
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"usuario_id": u.UsuarioID.String(),
		"sub":        u.UsuarioID.String(),
		"papel":      string(u.UsuarioPapel),
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTL).Unix(),
	}
	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		refreshSecret = configs.JWTSecret
	}
	refreshClaims := jwt.MapClaims{
		"sub": u.UsuarioID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTL).Unix(),
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ValidarRefresh devolve o usuário dono de um refresh token válido.
func ValidarRefresh(tokenStr string) (uuid.UUID, error) {
	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		refreshSecret = configs.JWTSecret
	}
	if refreshSecret == "" {
		return uuid.Nil, ErrSegredoAusente
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token inválido")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("refresh token inválido")
	}
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token inválido")
	}
	return id, nil
}
