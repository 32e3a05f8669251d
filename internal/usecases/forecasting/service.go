// Package forecasting mantém os perfis estatísticos mensais de cada item e prevê a quantidade do próximo mês
package forecasting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Forecaster interface {
	// InitializeProfiles recria os perfis a partir do histórico completo de observações
	InitializeProfiles(history []domain.Observation) (*domain.InitializeResult, error)

	// ApplyMonthlyUpdate aplica um lote de observações de um novo mês sobre os perfis existentes
	ApplyMonthlyUpdate(observations []domain.Observation) (*domain.MonthlyUpdateResult, error)

	// PredictNextMonth retorna a lista completa de previsões, ordenada por quantidade decrescente
	PredictNextMonth(month time.Month) ([]domain.Prediction, error)

	ListProfiles() ([]*domain.Profile, error)
	GetProfile(entityID string) (*domain.Profile, error)
}

// ForecastConfig representa os parâmetros do motor de previsão
type ForecastConfig struct {
	MinHistory      int
	WindowSize      int
	IdempotencyMode string
}

type Service struct {
	profileRepo repository.ProfileRepository
	ledgerRepo  repository.AppliedPeriodRepository
	config      ForecastConfig

	// writeMutex serializa carga inicial e atualização mensal entre o cron e a API,
	// garantindo que a verificação do período e a escrita não se intercalem
	writeMutex sync.Mutex
}

func NewService(
	profileRepo repository.ProfileRepository,
	ledgerRepo repository.AppliedPeriodRepository,
	cfg *config.Config,
) Forecaster {
	forecastConfig := ForecastConfig{
		MinHistory:      cfg.Forecast.MinHistory,
		WindowSize:      cfg.Forecast.WindowSize,
		IdempotencyMode: cfg.Forecast.IdempotencyMode,
	}

	if forecastConfig.IdempotencyMode == config.IdempotencyLedger && ledgerRepo == nil {
		logrus.Warn("Modo ledger sem repositório de períodos aplicados, usando verificação global")
		forecastConfig.IdempotencyMode = config.IdempotencyGlobal
	}

	return &Service{
		profileRepo: profileRepo,
		ledgerRepo:  ledgerRepo,
		config:      forecastConfig,
	}
}

func (s *Service) InitializeProfiles(history []domain.Observation) (*domain.InitializeResult, error) {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	result := &domain.InitializeResult{
		RunID:    newRunID(),
		Produced: []string{},
		Skipped:  []domain.SkippedEntity{},
	}

	order, groups := groupByEntity(history)
	for _, entityID := range order {
		profile, validCount := BuildProfile(entityID, groups[entityID], s.config.MinHistory, s.config.WindowSize)
		if profile == nil {
			result.Skipped = append(result.Skipped, domain.SkippedEntity{
				EntityID:          entityID,
				Reason:            domain.SkipInsufficientHistory,
				ValidObservations: validCount,
			})
			continue
		}

		if err := s.profileRepo.Upsert(profile); err != nil {
			return result, upstreamError(err, entityID, "falha ao gravar perfil")
		}
		result.Produced = append(result.Produced, entityID)
	}

	logrus.WithFields(logrus.Fields{
		"run_id":   result.RunID,
		"entities": len(order),
		"produced": len(result.Produced),
		"skipped":  len(result.Skipped),
	}).Info("Carga inicial de perfis concluída")

	return result, nil
}

func (s *Service) ApplyMonthlyUpdate(observations []domain.Observation) (*domain.MonthlyUpdateResult, error) {
	target, ok := targetPeriod(observations)
	if !ok {
		return nil, NewForecastError(ErrEmptyBatch, apiErrors.ErrMissingRequiredData, "nenhuma observação recebida")
	}

	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	result := &domain.MonthlyUpdateResult{
		RunID:        newRunID(),
		TargetPeriod: target,
		Updated:      []string{},
		Skipped:      []domain.SkippedEntity{},
	}

	logger := logrus.WithFields(logrus.Fields{
		"run_id":        result.RunID,
		"target_period": target.Format(domain.PeriodLayout),
	})

	applied, err := s.isPeriodApplied(target)
	if err != nil {
		return nil, err
	}

	if applied {
		logger.Info("Período já aplicado, nenhuma alteração realizada")
		result.AlreadyApplied = true
		return s.withProfiles(result)
	}

	for _, observation := range observations {
		if !observation.HasQuantity() {
			result.Skipped = append(result.Skipped, domain.SkippedEntity{
				EntityID: observation.EntityID,
				Reason:   domain.SkipMissingQuantity,
			})
			continue
		}

		current, err := s.profileRepo.FindOne(observation.EntityID)
		if err != nil {
			return nil, upstreamError(err, observation.EntityID, "falha ao buscar perfil")
		}

		if current == nil {
			result.Skipped = append(result.Skipped, domain.SkippedEntity{
				EntityID: observation.EntityID,
				Reason:   domain.SkipMissingProfile,
			})
			continue
		}

		next := AdvanceProfile(current, observation, s.config.WindowSize)
		if err := s.profileRepo.Update(next); err != nil {
			return nil, upstreamError(err, observation.EntityID, "falha ao atualizar perfil")
		}
		result.Updated = append(result.Updated, observation.EntityID)
	}

	if s.config.IdempotencyMode == config.IdempotencyLedger {
		if err := s.ledgerRepo.MarkApplied(target, result.RunID); err != nil {
			return nil, upstreamError(err, "", "falha ao registrar período aplicado")
		}
	}

	logger.WithFields(logrus.Fields{
		"rows":    len(observations),
		"updated": len(result.Updated),
		"skipped": len(result.Skipped),
	}).Info("Atualização mensal de perfis concluída")

	return s.withProfiles(result)
}

// isPeriodApplied verifica se o período já foi aplicado. No modo global basta
// que qualquer perfil tenha last_updated igual ao período.
func (s *Service) isPeriodApplied(period time.Time) (bool, error) {
	if s.config.IdempotencyMode == config.IdempotencyLedger {
		applied, err := s.ledgerRepo.IsApplied(period)
		if err != nil {
			return false, upstreamError(err, "", "falha ao consultar períodos aplicados")
		}
		return applied, nil
	}

	existing, err := s.profileRepo.FindOneByLastUpdated(period)
	if err != nil {
		return false, upstreamError(err, "", "falha ao consultar perfis por last_updated")
	}
	return existing != nil, nil
}

func (s *Service) withProfiles(result *domain.MonthlyUpdateResult) (*domain.MonthlyUpdateResult, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, upstreamError(err, "", "falha ao listar perfis")
	}
	result.Profiles = profiles
	return result, nil
}

func (s *Service) PredictNextMonth(month time.Month) ([]domain.Prediction, error) {
	if month < time.January || month > time.December {
		return nil, NewForecastError(ErrInvalidMonth, apiErrors.ErrInvalidRequest, month.String())
	}

	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, upstreamError(err, "", "falha ao listar perfis")
	}

	predictions := RankPredictions(profiles, month)

	logrus.WithFields(logrus.Fields{
		"month":       int(month),
		"profiles":    len(profiles),
		"predictions": len(predictions),
	}).Debug("Previsão do próximo mês calculada")

	return predictions, nil
}

func (s *Service) ListProfiles() ([]*domain.Profile, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, upstreamError(err, "", "falha ao listar perfis")
	}
	return profiles, nil
}

func (s *Service) GetProfile(entityID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindOne(entityID)
	if err != nil {
		return nil, upstreamError(err, entityID, "falha ao buscar perfil")
	}

	if profile == nil {
		forecastErr := NewForecastError(ErrProfileNotFound, apiErrors.ErrResourceNotFound, entityID)
		forecastErr.EntityID = entityID
		return nil, forecastErr
	}

	return profile, nil
}

func newRunID() string {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Falha ao gerar identificador da execução")
		return time.Now().UTC().Format("20060102T150405")
	}
	return id
}
