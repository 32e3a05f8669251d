package forecasting

import (
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func observation(entityID string, period time.Time, quantity float64) domain.Observation {
	return domain.NewObservation(entityID, period, quantity)
}

func missing(entityID string, period time.Time) domain.Observation {
	return domain.Observation{EntityID: entityID, Period: period}
}

// sixMonthHistory gera observações consecutivas a partir de janeiro de 2025
func sixMonthHistory(entityID string, quantities ...float64) []domain.Observation {
	history := make([]domain.Observation, 0, len(quantities))
	for i, q := range quantities {
		history = append(history, observation(entityID, month(2025, time.Month(i+1)), q))
	}
	return history
}

func testConfig(mode string) *config.Config {
	return &config.Config{
		Forecast: config.Forecast{
			MinHistory:      6,
			WindowSize:      6,
			TopN:            100,
			IdempotencyMode: mode,
		},
	}
}
