package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
)

// ObservationSource fornece o lote de observações do mês a ser aplicado
type ObservationSource func(path string) ([]domain.Observation, error)

// ProfileUpdateSyncConfig representa a configuração do agendador de atualização mensal dos perfis
type ProfileUpdateSyncConfig struct {
	CronSchedule string
	FeedPath     string
	SyncEnabled  bool
}

// ProfileUpdateSyncService agenda a aplicação do lote mensal sobre os perfis
type ProfileUpdateSyncService struct {
	scheduler           *gocron.Scheduler
	config              ProfileUpdateSyncConfig
	forecaster          forecasting.Forecaster
	readObservations    ObservationSource
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastTargetPeriod    string
	lastError           string
}

// NewProfileUpdateSyncService cria uma nova instância do serviço de atualização mensal dos perfis
func NewProfileUpdateSyncService(
	forecaster forecasting.Forecaster,
	readObservations ObservationSource,
	appConfig *config.Config,
) *ProfileUpdateSyncService {
	syncConfig := ProfileUpdateSyncConfig{
		CronSchedule: appConfig.ProfileUpdateSync.CronSchedule,
		FeedPath:     appConfig.ProfileUpdateSync.FeedPath,
		SyncEnabled:  appConfig.ProfileUpdateSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"feed_path":     syncConfig.FeedPath,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de atualização de perfis carregada")

	return &ProfileUpdateSyncService{
		scheduler:        gocron.NewScheduler(time.UTC),
		config:           syncConfig,
		forecaster:       forecaster,
		readObservations: readObservations,
	}
}

// Start inicia o agendador
func (s *ProfileUpdateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Atualização mensal de perfis desabilitada por configuração")
		return nil
	}

	if s.config.FeedPath == "" {
		return fmt.Errorf("caminho do arquivo de observações mensais não configurado")
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização mensal de perfis")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncProfiles()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização mensal de perfis: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização mensal de perfis")
		s.scheduler.Stop()
	}()

	return nil
}

// syncProfiles lê o arquivo de observações e aplica o lote mensal
func (s *ProfileUpdateSyncService) syncProfiles() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização mensal de perfis já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithField("feed_path", s.config.FeedPath)
	logger.Info("Iniciando atualização mensal de perfis")

	result, err := s.run()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		logger.WithError(err).Error("Erro na atualização mensal de perfis")
		s.lastError = err.Error()
		return
	}

	s.lastError = ""
	s.lastRunID = result.RunID
	s.lastTargetPeriod = result.TargetPeriod.Format(domain.MonthLayout)
	s.lastSyncCompletedAt = time.Now()

	logger.WithFields(logrus.Fields{
		"run_id":          result.RunID,
		"target_period":   s.lastTargetPeriod,
		"already_applied": result.AlreadyApplied,
		"updated":         len(result.Updated),
		"skipped":         len(result.Skipped),
		"duration":        time.Since(s.lastSyncStartedAt).String(),
	}).Info("Atualização mensal de perfis concluída")
}

func (s *ProfileUpdateSyncService) run() (*domain.MonthlyUpdateResult, error) {
	observations, err := s.readObservations(s.config.FeedPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler observações mensais: %w", err)
	}

	return s.forecaster.ApplyMonthlyUpdate(observations)
}

// TriggerManualSync inicia manualmente a atualização mensal. Retorna false se já houver uma em andamento.
func (s *ProfileUpdateSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização mensal de perfis já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de perfis")
	go s.syncProfiles()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ProfileUpdateSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"feed_path":              s.config.FeedPath,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_target_period":     s.lastTargetPeriod,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
