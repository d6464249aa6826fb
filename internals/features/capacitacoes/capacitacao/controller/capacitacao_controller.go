// file: internals/features/capacitacoes/capacitacao/controller/capacitacao_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	capDTO "capacita_backend/internals/features/capacitacoes/capacitacao/dto"
	capModel "capacita_backend/internals/features/capacitacoes/capacitacao/model"
	capService "capacita_backend/internals/features/capacitacoes/capacitacao/service"
	helper "capacita_backend/internals/helpers"
)

type CapacitacaoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCapacitacaoController(db *gorm.DB) *CapacitacaoController {
	return &CapacitacaoController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /capacitacoes
func (ctl *CapacitacaoController) Create(c *fiber.Ctx) error {
	var req capDTO.CreateCapacitacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "data inválida, use YYYY-MM-DD")
	}

	// valida o período antes de gravar; nunca clampa em silêncio
	if _, err := capService.ExpandirPeriodo(m.CapacitacaoDataInicio, m.CapacitacaoDataFim); err != nil {
		if errors.Is(err, capService.ErrPeriodoInvalido) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctl.DB.WithContext(c.Context()), helper.SlugOptions{
		Table:            "capacitacoes",
		SlugColumn:       "capacitacao_slug",
		SoftDeleteColumn: "capacitacao_deleted_at",
		DefaultBase:      "capacitacao",
	}, m.CapacitacaoTitulo)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	m.CapacitacaoSlug = &slug

	if err := ctl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Capacitação criada", capDTO.FromModel(m))
}

// GET /capacitacoes/list
func (ctl *CapacitacaoController) List(c *fiber.Ctx) error {
	var q capDTO.ListCapacitacaoQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query inválida")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.Context()).Model(&capModel.CapacitacaoModel{})

	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("capacitacao_titulo ILIKE ? OR COALESCE(capacitacao_descricao,'') ILIKE ?", like, like)
	}
	if s := strings.TrimSpace(q.Status); s != "" {
		tx = tx.Where("capacitacao_status = ?", strings.ToLower(s))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []capModel.CapacitacaoModel
	if err := tx.
		Order("capacitacao_data_inicio DESC, capacitacao_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", capDTO.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /capacitacoes/:id
func (ctl *CapacitacaoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var m capModel.CapacitacaoModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "capacitacao_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capacitação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", capDTO.FromModel(m))
}

// GET /capacitacoes/:id/datas
// Expõe o período expandido (uma entrada por dia, inclusive nas pontas).
func (ctl *CapacitacaoController) ListDatas(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var m capModel.CapacitacaoModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "capacitacao_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capacitação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	datas, err := capService.ExpandirPeriodo(m.CapacitacaoDataInicio, m.CapacitacaoDataFim)
	if err != nil {
		// período inconsistente gravado antes da validação existir
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	out := make([]string, 0, len(datas))
	for _, d := range datas {
		out = append(out, d.Format(capDTO.LayoutData))
	}
	return helper.JsonOK(c, "", fiber.Map{
		"capacitacao_id": m.CapacitacaoID,
		"datas":          out,
	})
}

// PATCH /capacitacoes/:id
func (ctl *CapacitacaoController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	var req capDTO.PatchCapacitacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m capModel.CapacitacaoModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "capacitacao_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capacitação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Titulo != nil {
		m.CapacitacaoTitulo = strings.TrimSpace(*req.Titulo)
	}
	if req.Descricao != nil {
		m.CapacitacaoDescricao = req.Descricao
	}
	if req.Local != nil {
		m.CapacitacaoLocal = req.Local
	}
	if req.DataInicio != nil {
		ini, err := time.Parse(capDTO.LayoutData, strings.TrimSpace(*req.DataInicio))
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "data_inicio inválida, use YYYY-MM-DD")
		}
		m.CapacitacaoDataInicio = ini
	}
	if req.DataFim != nil {
		if strings.TrimSpace(*req.DataFim) == "" {
			m.CapacitacaoDataFim = nil
		} else {
			fim, err := time.Parse(capDTO.LayoutData, strings.TrimSpace(*req.DataFim))
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "data_fim inválida, use YYYY-MM-DD")
			}
			m.CapacitacaoDataFim = &fim
		}
	}
	if req.Status != nil {
		m.CapacitacaoStatus = capModel.StatusCapacitacao(*req.Status)
	}

	// revalida o período com os valores finais
	if _, err := capService.ExpandirPeriodo(m.CapacitacaoDataInicio, m.CapacitacaoDataFim); err != nil {
		if errors.Is(err, capService.ErrPeriodoInvalido) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m.CapacitacaoUpdatedAt = time.Now()
	if err := ctl.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Capacitação atualizada", capDTO.FromModel(m))
}

// DELETE /capacitacoes/:id (soft delete)
func (ctl *CapacitacaoController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id inválido")
	}

	res := ctl.DB.WithContext(c.Context()).
		Delete(&capModel.CapacitacaoModel{}, "capacitacao_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Capacitação não encontrada")
	}
	return helper.JsonDeleted(c, "Capacitação removida", fiber.Map{"capacitacao_id": id})
}
