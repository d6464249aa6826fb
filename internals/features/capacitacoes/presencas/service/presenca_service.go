// file: internals/features/capacitacoes/presencas/service/presenca_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	capModel "capacita_backend/internals/features/capacitacoes/capacitacao/model"
	capService "capacita_backend/internals/features/capacitacoes/capacitacao/service"
	presModel "capacita_backend/internals/features/capacitacoes/presencas/model"
)

// ErrDataForaDoPeriodo: tentativa de registrar presença em data fora do
// período da capacitação. Indica bug de cliente ou tela defasada; a operação
// é rejeitada, nunca "corrigida".
var ErrDataForaDoPeriodo = errors.New("data fora do período da capacitação")

type PresencaService struct {
	DB *gorm.DB
}

func NewPresencaService(db *gorm.DB) *PresencaService {
	return &PresencaService{DB: db}
}

// validarData confere se a data pertence ao período expandido da capacitação.
func validarData(cap capModel.CapacitacaoModel, data time.Time) error {
	ok, err := capService.PeriodoContem(cap.CapacitacaoDataInicio, cap.CapacitacaoDataFim, data)
	if err != nil {
		return err
	}
	if !ok {
		return ErrDataForaDoPeriodo
	}
	return nil
}

// MarcarPresenca grava (ou regrava) a presença de um inscrito numa data.
// Idempotente: chamadas repetidas com os mesmos argumentos deixam exatamente
// uma linha com presente=true: o índice único (capacitacao, inscricao, data)
// transforma a segunda gravação em update in-place.
func (s *PresencaService) MarcarPresenca(ctx context.Context, cap capModel.CapacitacaoModel, inscricaoID uuid.UUID, data time.Time) error {
	if err := validarData(cap, data); err != nil {
		return err
	}

	m := presModel.PresencaModel{
		PresencaCapacitacaoID: cap.CapacitacaoID,
		PresencaInscricaoID:   inscricaoID,
		PresencaData:          capService.SomenteData(data),
		PresencaPresente:      true,
		PresencaCreatedAt:     time.Now(),
		PresencaUpdatedAt:     time.Now(),
	}

	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "presenca_capacitacao_id"},
				{Name: "presenca_inscricao_id"},
				{Name: "presenca_data"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"presenca_presente":   true,
				"presenca_updated_at": time.Now(),
			}),
		}).
		Create(&m).Error
}

// RemoverPresenca apaga a linha do trio (capacitação, inscrição, data).
// Não é erro quando a linha não existe (no-op).
func (s *PresencaService) RemoverPresenca(ctx context.Context, capacitacaoID, inscricaoID uuid.UUID, data time.Time) error {
	return s.DB.WithContext(ctx).
		Where("presenca_capacitacao_id = ? AND presenca_inscricao_id = ? AND presenca_data = ?",
			capacitacaoID, inscricaoID, capService.SomenteData(data)).
		Delete(&presModel.PresencaModel{}).Error
}

// SubstituirDia reconcilia o dia inteiro com o conjunto informado:
// cria as presenças que faltam, remove as que sobram e não toca nas que já
// batem. Roda dentro de uma única transação: ou o dia inteiro é aplicado,
// ou nada é. Chamadas concorrentes para o mesmo (capacitação, data) resolvem
// no isolamento do banco; último commit vence.
func (s *PresencaService) SubstituirDia(ctx context.Context, cap capModel.CapacitacaoModel, data time.Time, inscricaoIDs []uuid.UUID) error {
	if err := validarData(cap, data); err != nil {
		return err
	}
	dia := capService.SomenteData(data)

	desejado := make(map[uuid.UUID]struct{}, len(inscricaoIDs))
	for _, id := range inscricaoIDs {
		desejado[id] = struct{}{}
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existentes []presModel.PresencaModel
		if err := tx.
			Where("presenca_capacitacao_id = ? AND presenca_data = ?", cap.CapacitacaoID, dia).
			Find(&existentes).Error; err != nil {
			return err
		}

		jaMarcado := make(map[uuid.UUID]struct{}, len(existentes))
		var remover []uuid.UUID
		for _, p := range existentes {
			jaMarcado[p.PresencaInscricaoID] = struct{}{}
			if _, ok := desejado[p.PresencaInscricaoID]; !ok {
				remover = append(remover, p.PresencaID)
			}
		}

		if len(remover) > 0 {
			if err := tx.
				Where("presenca_id IN ?", remover).
				Delete(&presModel.PresencaModel{}).Error; err != nil {
				return err
			}
		}

		var criar []presModel.PresencaModel
		agora := time.Now()
		for id := range desejado {
			if _, ok := jaMarcado[id]; ok {
				continue // linha existente fica intocada
			}
			criar = append(criar, presModel.PresencaModel{
				PresencaCapacitacaoID: cap.CapacitacaoID,
				PresencaInscricaoID:   id,
				PresencaData:          dia,
				PresencaPresente:      true,
				PresencaCreatedAt:     agora,
				PresencaUpdatedAt:     agora,
			})
		}
		if len(criar) > 0 {
			if err := tx.Create(&criar).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListarPorData devolve as presenças de um dia da capacitação.
func (s *PresencaService) ListarPorData(ctx context.Context, capacitacaoID uuid.UUID, data time.Time) ([]presModel.PresencaModel, error) {
	var rows []presModel.PresencaModel
	err := s.DB.WithContext(ctx).
		Where("presenca_capacitacao_id = ? AND presenca_data = ?",
			capacitacaoID, capService.SomenteData(data)).
		Find(&rows).Error
	return rows, err
}

// FrequenciaInscrito é a visão por inscrito: uma entrada por dia do período,
// com presente=false nos dias sem registro (ausência = ausência de linha).
type FrequenciaInscrito struct {
	Data     time.Time `json:"data"`
	Presente bool      `json:"presente"`
}

// ListarPorInscrito percorre o período da capacitação em ordem crescente e
// marca presente apenas nos dias com linha gravada.
func (s *PresencaService) ListarPorInscrito(ctx context.Context, cap capModel.CapacitacaoModel, inscricaoID uuid.UUID) ([]FrequenciaInscrito, error) {
	datas, err := capService.ExpandirPeriodo(cap.CapacitacaoDataInicio, cap.CapacitacaoDataFim)
	if err != nil {
		return nil, err
	}

	var rows []presModel.PresencaModel
	if err := s.DB.WithContext(ctx).
		Where("presenca_capacitacao_id = ? AND presenca_inscricao_id = ?",
			cap.CapacitacaoID, inscricaoID).
		Order("presenca_data ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	marcados := make(map[time.Time]bool, len(rows))
	for _, p := range rows {
		marcados[capService.SomenteData(p.PresencaData)] = p.PresencaPresente
	}

	out := make([]FrequenciaInscrito, 0, len(datas))
	for _, d := range datas {
		out = append(out, FrequenciaInscrito{
			Data:     d,
			Presente: marcados[d],
		})
	}
	return out, nil
}
