// file: internals/features/usuarios/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	usrDTO "capacita_backend/internals/features/usuarios/dto"
	usrModel "capacita_backend/internals/features/usuarios/model"
	usrService "capacita_backend/internals/features/usuarios/service"
	helper "capacita_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req usrDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "falha ao processar senha")
	}

	m := req.ToModel(string(hash))
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "23505") {
			return helper.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Usuário cadastrado", usrDTO.FromModel(m))
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req usrDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var u usrModel.UsuarioModel
	err := ctl.DB.WithContext(c.Context()).
		First(&u, "usuario_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mesma mensagem do caso de senha errada; não vaza existência
			return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(u.UsuarioSenha), []byte(req.Senha)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}
	if !u.UsuarioAtivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	access, refresh, err := usrService.EmitirTokens(u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Login realizado", usrDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      usrDTO.FromModel(u),
	})
}

// POST /auth/refresh-token
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "refresh_token ausente")
	}

	usuarioID, err := usrService.ValidarRefresh(strings.TrimSpace(body.RefreshToken))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var u usrModel.UsuarioModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&u, "usuario_id = ?", usuarioID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !u.UsuarioAtivo {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	access, refresh, err := usrService.EmitirTokens(u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Token renovado", usrDTO.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      usrDTO.FromModel(u),
	})
}

// GET /auth/me (exige AuthMiddleware)
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	raw, _ := c.Locals("usuario_id").(string)
	usuarioID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sessão inválida")
	}

	var u usrModel.UsuarioModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&u, "usuario_id = ?", usuarioID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return helper.JsonOK(c, "", usrDTO.FromModel(u))
}
