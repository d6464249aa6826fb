// file: internals/features/avaliacoes/respostas/controller/resposta_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
	respDTO "capacita_backend/internals/features/avaliacoes/respostas/dto"
	respModel "capacita_backend/internals/features/avaliacoes/respostas/model"
	helper "capacita_backend/internals/helpers"
)

type RespostaController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewRespostaController(db *gorm.DB) *RespostaController {
	return &RespostaController{
		DB:        db,
		Validator: validator.New(),
	}
}

// garante que a capacitação existe (e não foi soft-deletada) antes de
// aceitar uma avaliação para ela
func (ctl *RespostaController) ensureCapacitacaoExists(c *fiber.Ctx, capacitacaoID uuid.UUID) error {
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

// POST /capacitacoes/:capacitacao_id/avaliacoes
// Submissão completa de uma avaliação: cria a avaliação e todas as
// respostas numa transação só. O valor cru vai para o banco como veio;
// normalização só acontece na agregação do relatório.
func (ctl *RespostaController) Submeter(c *fiber.Ctx) error {
	capacitacaoID, err := uuid.Parse(c.Params("capacitacao_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "capacitacao_id inválido")
	}
	if err := ctl.ensureCapacitacaoExists(c, capacitacaoID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req respDTO.SubmeterAvaliacaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload inválido")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	modeloID, _ := uuid.Parse(req.ModeloID)

	// carrega o modelo com as perguntas para validar o que chegou
	var modelo modModel.ModeloAvaliacaoModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("ModeloPerguntas").
		First(&modelo, "modelo_id = ?", modeloID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Modelo de avaliação não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	perguntasDoModelo := make(map[uuid.UUID]modModel.PerguntaModel, len(modelo.ModeloPerguntas))
	for _, p := range modelo.ModeloPerguntas {
		perguntasDoModelo[p.PerguntaID] = p
	}

	itens := make([]respModel.RespostaModel, 0, len(req.Respostas))
	respondidas := make(map[uuid.UUID]struct{}, len(req.Respostas))
	for _, item := range req.Respostas {
		perguntaID, err := uuid.Parse(item.PerguntaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "pergunta_id inválido")
		}
		pergunta, ok := perguntasDoModelo[perguntaID]
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "resposta referencia pergunta de outro modelo")
		}
		if item.Opcao != nil && item.Texto != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "resposta não pode ter opção e texto ao mesmo tempo")
		}
		if _, dup := respondidas[perguntaID]; dup {
			return helper.JsonError(c, fiber.StatusBadRequest, "pergunta respondida mais de uma vez")
		}
		respondidas[perguntaID] = struct{}{}

		m := respModel.RespostaModel{
			RespostaPerguntaID: perguntaID,
			RespostaCreatedAt:  time.Now(),
		}
		if pergunta.PerguntaTipo.EhTextoLivre() {
			m.RespostaValorTexto = item.Texto
		} else {
			m.RespostaOpcao = item.Opcao
		}
		itens = append(itens, m)
	}

	// perguntas obrigatórias precisam vir na submissão
	for _, p := range modelo.ModeloPerguntas {
		if !p.PerguntaObrigatoria {
			continue
		}
		if _, ok := respondidas[p.PerguntaID]; !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "pergunta obrigatória sem resposta: "+p.PerguntaTexto)
		}
	}

	av := respModel.AvaliacaoModel{
		AvaliacaoCapacitacaoID: capacitacaoID,
		AvaliacaoModeloID:      modeloID,
		AvaliacaoMetadata:      req.MetadataJSON(),
		AvaliacaoCreatedAt:     time.Now(),
	}
	if req.InscricaoID != nil {
		id, _ := uuid.Parse(*req.InscricaoID)
		av.AvaliacaoInscricaoID = &id
	}

	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&av).Error; err != nil {
			return err
		}
		if len(itens) == 0 {
			return nil
		}
		for i := range itens {
			itens[i].RespostaAvaliacaoID = av.AvaliacaoID
		}
		return tx.Create(&itens).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Este inscrito já avaliou esta capacitação")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Avaliação registrada", respDTO.AvaliacaoResponse{
		AvaliacaoID:   av.AvaliacaoID,
		CapacitacaoID: av.AvaliacaoCapacitacaoID,
		ModeloID:      av.AvaliacaoModeloID,
		InscricaoID:   av.AvaliacaoInscricaoID,
		TotalItens:    len(itens),
		CreatedAt:     av.AvaliacaoCreatedAt,
	})
}

// GET /capacitacoes/:capacitacao_id/avaliacoes/total
func (ctl *RespostaController) Total(c *fiber.Ctx) error {
	capacitacaoID, err := uuid.Parse(c.Params("capacitacao_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "capacitacao_id inválido")
	}

	var total int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&respModel.AvaliacaoModel{}).
		Where("avaliacao_capacitacao_id = ?", capacitacaoID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", fiber.Map{
		"capacitacao_id": capacitacaoID,
		"total":          total,
	})
}
