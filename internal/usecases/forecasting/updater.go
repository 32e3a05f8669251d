package forecasting

import (
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

// AdvanceProfile aplica uma nova observação mensal sobre o perfil atual e retorna o perfil resultante.
// Média e desvio passam a considerar somente a janela; a sazonalidade do mês é a média
// de dois pontos entre o valor anterior e a nova quantidade.
func AdvanceProfile(current *domain.Profile, observation domain.Observation, windowSize int) *domain.Profile {
	next := current.Clone()
	quantity := observation.Qty()

	window := next.LastSixMonths
	if len(window) >= windowSize {
		window = window[len(window)-windowSize+1:]
	}
	window = append(append(make([]float64, 0, windowSize), window...), quantity)
	next.LastSixMonths = window

	next.MeanQty = utils.RoundWithTwoDecimalPlace(Mean(window))
	next.StdDevQty = utils.RoundWithTwoDecimalPlace(PopulationStdDev(window))

	if len(window) >= 2 {
		slope, intercept := LinearTrend(window)
		next.Slope = utils.RoundWithFourDecimalPlace(slope)
		next.Intercept = utils.RoundWithTwoDecimalPlace(intercept)
	}

	label := domain.MonthLabel(observation.Period.Month())
	previous, exists := next.Seasonality[label]
	if !exists {
		previous = quantity
	}
	next.Seasonality[label] = utils.RoundWithTwoDecimalPlace((previous + quantity) / 2)

	next.LastUpdated = domain.NormalizePeriod(observation.Period)

	return next
}

// targetPeriod é o maior período presente no lote
func targetPeriod(observations []domain.Observation) (time.Time, bool) {
	var target time.Time
	for i, observation := range observations {
		if i == 0 || observation.Period.After(target) {
			target = observation.Period
		}
	}
	return domain.NormalizePeriod(target), len(observations) > 0
}
