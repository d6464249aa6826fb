// file: internals/features/avaliacoes/relatorios/controller/relatorio_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	modModel "capacita_backend/internals/features/avaliacoes/modelos/model"
	relService "capacita_backend/internals/features/avaliacoes/relatorios/service"
	respModel "capacita_backend/internals/features/avaliacoes/respostas/model"
	capModel "capacita_backend/internals/features/capacitacoes/capacitacao/model"
	insModel "capacita_backend/internals/features/capacitacoes/inscricoes/model"
	helper "capacita_backend/internals/helpers"
)

type RelatorioController struct {
	DB *gorm.DB
}

func NewRelatorioController(db *gorm.DB) *RelatorioController {
	return &RelatorioController{DB: db}
}

// GET /capacitacoes/:capacitacao_id/relatorio-avaliacao?modelo_id=
//
// O controller só busca os dados; a montagem (normalização, distribuições,
// médias, taxa de resposta) é toda do service, que é puro.
func (ctl *RelatorioController) Gerar(c *fiber.Ctx) error {
	capacitacaoID, err := uuid.Parse(c.Params("capacitacao_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "capacitacao_id inválido")
	}

	db := ctl.DB.WithContext(c.Context())

	var cap capModel.CapacitacaoModel
	if err := db.First(&cap, "capacitacao_id = ?", capacitacaoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Capacitação não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	modeloID, err := ctl.resolverModeloID(db, capacitacaoID, c.Query("modelo_id"))
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var modelo modModel.ModeloAvaliacaoModel
	if err := db.
		Preload("ModeloPerguntas", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("pergunta_ordem ASC")
		}).
		First(&modelo, "modelo_id = ?", modeloID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Modelo de avaliação não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalInscritos int64
	if err := db.Model(&insModel.InscricaoModel{}).
		Where("inscricao_capacitacao_id = ?", capacitacaoID).
		Count(&totalInscritos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var avaliacaoIDs []uuid.UUID
	if err := db.Model(&respModel.AvaliacaoModel{}).
		Where("avaliacao_capacitacao_id = ? AND avaliacao_modelo_id = ?", capacitacaoID, modeloID).
		Pluck("avaliacao_id", &avaliacaoIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	respostasPorPergunta := make(map[uuid.UUID][]string)
	if len(avaliacaoIDs) > 0 {
		var respostas []respModel.RespostaModel
		if err := db.
			Where("resposta_avaliacao_id IN ?", avaliacaoIDs).
			Order("resposta_created_at ASC").
			Find(&respostas).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for _, r := range respostas {
			respostasPorPergunta[r.RespostaPerguntaID] = append(respostasPorPergunta[r.RespostaPerguntaID], r.ValorCru())
		}
	}

	rel := relService.MontarRelatorio(capacitacaoID, modelo, respostasPorPergunta, int(totalInscritos), len(avaliacaoIDs))
	return helper.JsonOK(c, "", rel)
}

// resolverModeloID aceita ?modelo_id= explícito; sem ele, usa o modelo da
// submissão mais recente da capacitação.
func (ctl *RelatorioController) resolverModeloID(db *gorm.DB, capacitacaoID uuid.UUID, query string) (uuid.UUID, error) {
	if query != "" {
		id, err := uuid.Parse(query)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "modelo_id inválido")
		}
		return id, nil
	}

	var ultima respModel.AvaliacaoModel
	err := db.
		Where("avaliacao_capacitacao_id = ?", capacitacaoID).
		Order("avaliacao_created_at DESC").
		First(&ultima).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Nenhuma avaliação registrada para esta capacitação")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return ultima.AvaliacaoModeloID, nil
}
