// file: internals/features/capacitacoes/presencas/controller/presenca_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	capModel "capacita_backend/internals/features/capacitacoes/capacitacao/model"
	presDTO "capacita_backend/internals/features/capacitacoes/presencas/dto"
	presService "capacita_backend/internals/features/capacitacoes/presencas/service"
	helper "capacita_backend/internals/helpers"
)

type PresencaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *presService.PresencaService
}

func NewPresencaController(db *gorm.DB) *PresencaController {
	return &PresencaController{
		DB:        db,
		Validator: validator.New(),
		Service:   presService.NewPresencaService(db),
	}
}

func (ctl *PresencaController) carregarCapacitacao(c *fiber.Ctx) (capModel.CapacitacaoModel, error) {
	id, err := uuid.Parse(c.Params("capacitacao_id"))
	if err != nil {
		return capModel.CapacitacaoModel{}, fiber.NewError(fiber.StatusBadRequest, "capacitacao_id inválido")
	}
	var m capModel.CapacitacaoModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&m, "capacitacao_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return capModel.CapacitacaoModel{}, fiber.NewError(fiber.StatusNotFound, "Capacitação não encontrada")
		}
		return capModel.CapacitacaoModel{}, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return m, nil
}

func respostaErroServico(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, presService.ErrDataForaDoPeriodo):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// POST /capacitacoes/:capacitacao_id/presencas
func (ctl *PresencaController) Marcar(c *fiber.Ctx) error {
	cap, err := ctl.carregarCapacitacao(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req presDTO.MarcarPresencaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inscricaoID, _ := uuid.Parse(req.InscricaoID)
	data, _ := time.Parse(presDTO.LayoutData, req.Data)

	if err := ctl.Service.MarcarPresenca(c.UserContext(), cap, inscricaoID, data); err != nil {
		return respostaErroServico(c, err)
	}
	return helper.JsonCreated(c, "Presença registrada", fiber.Map{
		"capacitacao_id": cap.CapacitacaoID,
		"inscricao_id":   inscricaoID,
		"data":           req.Data,
	})
}

// DELETE /capacitacoes/:capacitacao_id/presencas
func (ctl *PresencaController) Remover(c *fiber.Ctx) error {
	cap, err := ctl.carregarCapacitacao(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req presDTO.RemoverPresencaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	inscricaoID, _ := uuid.Parse(req.InscricaoID)
	data, _ := time.Parse(presDTO.LayoutData, req.Data)

	if err := ctl.Service.RemoverPresenca(c.UserContext(), cap.CapacitacaoID, inscricaoID, data); err != nil {
		return respostaErroServico(c, err)
	}
	return helper.JsonDeleted(c, "Presença removida", fiber.Map{
		"capacitacao_id": cap.CapacitacaoID,
		"inscricao_id":   inscricaoID,
		"data":           req.Data,
	})
}

// PUT /capacitacoes/:capacitacao_id/presencas/dia
// Substitui o dia inteiro pelo conjunto informado (reconciliação atômica).
func (ctl *PresencaController) SubstituirDia(c *fiber.Ctx) error {
	cap, err := ctl.carregarCapacitacao(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req presDTO.SubstituirDiaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	data, _ := time.Parse(presDTO.LayoutData, req.Data)
	ids := make([]uuid.UUID, 0, len(req.InscricaoIDs))
	for _, s := range req.InscricaoIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "inscricao_ids contém id inválido")
		}
		ids = append(ids, id)
	}

	if err := ctl.Service.SubstituirDia(c.UserContext(), cap, data, ids); err != nil {
		return respostaErroServico(c, err)
	}
	return helper.JsonUpdated(c, "Dia reconciliado", fiber.Map{
		"capacitacao_id": cap.CapacitacaoID,
		"data":           req.Data,
		"presentes":      len(ids),
	})
}

// GET /capacitacoes/:capacitacao_id/presencas?data=YYYY-MM-DD
func (ctl *PresencaController) ListarPorData(c *fiber.Ctx) error {
	cap, err := ctl.carregarCapacitacao(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	data, err := time.Parse(presDTO.LayoutData, c.Query("data"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query ?data= inválida, use YYYY-MM-DD")
	}

	rows, err := ctl.Service.ListarPorData(c.UserContext(), cap.CapacitacaoID, data)
	if err != nil {
		return respostaErroServico(c, err)
	}
	return helper.JsonOK(c, "", presDTO.FromModels(rows))
}

// GET /capacitacoes/:capacitacao_id/presencas/inscrito/:inscricao_id
func (ctl *PresencaController) ListarPorInscrito(c *fiber.Ctx) error {
	cap, err := ctl.carregarCapacitacao(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	inscricaoID, err := uuid.Parse(c.Params("inscricao_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "inscricao_id inválido")
	}

	freq, err := ctl.Service.ListarPorInscrito(c.UserContext(), cap, inscricaoID)
	if err != nil {
		return respostaErroServico(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{
		"capacitacao_id": cap.CapacitacaoID,
		"inscricao_id":   inscricaoID,
		"frequencia":     presDTO.FromFrequencia(freq),
	})
}
