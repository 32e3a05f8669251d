package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

func syncConfig(enabled bool, feedPath string) *config.Config {
	return &config.Config{
		ProfileUpdateSync: config.ProfileUpdateSync{
			CronSchedule: "0 6 1 * *",
			Enabled:      enabled,
			FeedPath:     feedPath,
		},
	}
}

func TestProfileUpdateSyncService_syncProfiles(t *testing.T) {
	july := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	batch := []domain.Observation{domain.NewObservation("A1", july, 20)}

	tests := []struct {
		name     string
		reader   ObservationSource
		setup    func(forecaster *mocks.MockForecaster)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "lote aplicado com sucesso",
			reader: func(path string) ([]domain.Observation, error) {
				assert.Equal(t, "data/current_month.csv", path)
				return batch, nil
			},
			setup: func(forecaster *mocks.MockForecaster) {
				forecaster.EXPECT().ApplyMonthlyUpdate(batch).Return(&domain.MonthlyUpdateResult{
					RunID:        "run001",
					TargetPeriod: july,
					Updated:      []string{"A1"},
				}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "run001", status["last_run_id"])
				assert.Equal(t, "2025-07", status["last_target_period"])
				assert.Equal(t, "", status["last_error"])
				assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
		{
			name: "falha na leitura do arquivo não chama o serviço",
			reader: func(path string) ([]domain.Observation, error) {
				return nil, errors.New("arquivo não encontrado")
			},
			setup: func(forecaster *mocks.MockForecaster) {},
			validate: func(t *testing.T, status map[string]any) {
				assert.Contains(t, status["last_error"], "arquivo não encontrado")
				assert.Equal(t, "", status["last_run_id"])
			},
		},
		{
			name: "falha no serviço é registrada no status",
			reader: func(path string) ([]domain.Observation, error) {
				return batch, nil
			},
			setup: func(forecaster *mocks.MockForecaster) {
				forecaster.EXPECT().ApplyMonthlyUpdate(batch).Return(nil, errors.New("upstream failure"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "upstream failure", status["last_error"])
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			forecaster := mocks.NewMockForecaster(ctrl)
			tt.setup(forecaster)

			service := NewProfileUpdateSyncService(forecaster, tt.reader, syncConfig(true, "data/current_month.csv"))
			service.syncProfiles()

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			tt.validate(t, status)
		})
	}
}

func TestProfileUpdateSyncService_syncProfiles_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	forecaster := mocks.NewMockForecaster(ctrl)
	reader := func(path string) ([]domain.Observation, error) {
		t.Fatal("leitura não deveria acontecer com sincronização em andamento")
		return nil, nil
	}

	service := NewProfileUpdateSyncService(forecaster, reader, syncConfig(true, "data/current_month.csv"))
	service.syncRunning = true

	service.syncProfiles()
	assert.False(t, service.TriggerManualSync())
}

func TestProfileUpdateSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	forecaster := mocks.NewMockForecaster(ctrl)
	reader := func(path string) ([]domain.Observation, error) { return nil, nil }

	t.Run("desabilitado", func(t *testing.T) {
		service := NewProfileUpdateSyncService(forecaster, reader, syncConfig(false, ""))
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("sem arquivo configurado", func(t *testing.T) {
		service := NewProfileUpdateSyncService(forecaster, reader, syncConfig(true, ""))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewProfileUpdateSyncService(forecaster, reader, syncConfig(true, "data/current_month.csv"))
		assert.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
	})
}
