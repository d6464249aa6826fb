// file: internals/features/capacitacoes/inscricoes/controller/inscricao_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	insDTO "capacita_backend/internals/features/capacitacoes/inscricoes/dto"
	insModel "capacita_backend/internals/features/capacitacoes/inscricoes/model"
	helper "capacita_backend/internals/helpers"
)

type InscricaoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewInscricaoController(db *gorm.DB) *InscricaoController {
	return &InscricaoController{
		DB:        db,
		Validator: validator.New(),
	}
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "violates unique constraint") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "sqlstate 23505")
}

// garante que a capacitação existe (e não foi soft-deletada)
func (ctl *InscricaoController) ensureCapacitacaoExists(c *fiber.Ctx, capacitacaoID uuid.UUID) error {
	var count int64
	if err := ctl.DB.WithContext(c.Context()).
		Table("capacitacoes").
		Where("capacitacao_id = ? AND capacitacao_deleted_at IS NULL", capacitacaoID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Capacitação não encontrada")
	}
	return nil
}

// POST /capacitacoes/:capacitacao_id/inscricoes
func (ctl *InscricaoController) Create(c *fiber.Ctx) error {
	capacitacaoID, err := uuid.Parse(c.Params("capacitacao_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "capacitacao_id inválido")
	}
	if err := ctl.ensureCapacitacaoExists(c, capacitacaoID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req insDTO.CreateInscricaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(capacitacaoID)
	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Este e-mail já está inscrito nesta capacitação")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Inscrição criada", insDTO.FromModel(m))
}

// GET /capacitacoes/:capacitacao_id/inscricoes/list
func (ctl *InscricaoController) List(c *fiber.Ctx) error {
	capacitacaoID, err := uuid.Parse(c.Params("capacitacao_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "capacitacao_id inválido")
	}

	var q insDTO.ListInscricaoQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query inválida")
	}

	paging := helper.ResolvePaging(c, 20, 200)

	tx := ctl.DB.WithContext(c.Context()).
		Model(&insModel.InscricaoModel{}).
		Where("inscricao_capacitacao_id = ?", capacitacaoID)

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("inscricao_nome ILIKE ? OR inscricao_email ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []insModel.InscricaoModel
	if err := tx.
		Order("inscricao_nome ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", insDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /inscricoes/:id
func (ctl *InscricaoController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req insDTO.PatchInscricaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m insModel.InscricaoModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "inscricao_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Inscrição não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Nome != nil {
		m.InscricaoNome = strings.TrimSpace(*req.Nome)
	}
	if req.Email != nil {
		m.InscricaoEmail = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Orgao != nil {
		m.InscricaoOrgao = req.Orgao
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Este e-mail já está inscrito nesta capacitação")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Inscrição atualizada", insDTO.FromModel(m))
}

// DELETE /inscricoes/:id (soft delete)
func (ctl *InscricaoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&insModel.InscricaoModel{}, "inscricao_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Inscrição não encontrada")
	}
	return helper.JsonDeleted(c, "Inscrição removida", fiber.Map{"inscricao_id": id})
}
