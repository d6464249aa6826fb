// file: internals/features/avaliacoes/modelos/controller/modelo_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	modDTO "capacita_backend/internals/features/avaliacoes/modelos/dto"
	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
	helper "capacita_backend/internals/helpers"
)

type ModeloController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewModeloController(db *gorm.DB) *ModeloController {
	return &ModeloController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /avaliacoes/modelos
func (ctl *ModeloController) Create(c *fiber.Ctx) error {
	var req modDTO.CreateModeloRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// perguntas fechadas precisam de opções (defeito de definição, não de uso)
	for _, p := range req.Perguntas {
		if !modModel.TipoPerguntaValido(p.Tipo) {
			return helper.JsonError(c, fiber.StatusBadRequest, "tipo de pergunta desconhecido: "+p.Tipo)
		}
		tipo := modModel.TipoPergunta(p.Tipo)
		if (tipo.EhEscala() || tipo.EhCategorica()) && len(p.Opcoes) == 0 && modDTO.OpcoesPadrao(tipo) == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "pergunta fechada sem opções")
		}
	}

	m := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Modelo de avaliação criado", modDTO.FromModel(m))
}

// GET /avaliacoes/modelos/list
func (ctl *ModeloController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&modModel.ModeloAvaliacaoModel{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []modModel.ModeloAvaliacaoModel
	if err := tx.
		Preload("ModeloPerguntas", func(db *gorm.DB) *gorm.DB {
			return db.Order("pergunta_ordem ASC")
		}).
		Order("modelo_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]modDTO.ModeloResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, modDTO.FromModel(m))
	}
	return helper.JsonList(c, "", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /avaliacoes/modelos/:id
func (ctl *ModeloController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var m modModel.ModeloAvaliacaoModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("ModeloPerguntas", func(db *gorm.DB) *gorm.DB {
			return db.Order("pergunta_ordem ASC")
		}).
		First(&m, "modelo_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Modelo não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", modDTO.FromModel(m))
}

// DELETE /avaliacoes/modelos/:id (soft delete; recusa se já houver avaliações)
func (ctl *ModeloController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	// formulário versionado é imutável depois da primeira submissão
	var emUso int64
	if err := ctl.DB.WithContext(c.Context()).
		Table("avaliacoes").
		Where("avaliacao_modelo_id = ?", id).
		Count(&emUso).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if emUso > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Modelo já possui avaliações; crie uma nova versão")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&modModel.ModeloAvaliacaoModel{}, "modelo_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Modelo não encontrado")
	}
	return helper.JsonDeleted(c, "Modelo removido", fiber.Map{"modelo_id": id})
}
