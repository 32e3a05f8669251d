package forecasting

import (
	"sort"
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

// BuildProfile calcula o perfil de um item a partir do histórico completo.
// Retorna nil quando restam menos de minHistory observações válidas, junto com a contagem de válidas.
func BuildProfile(entityID string, history []domain.Observation, minHistory, windowSize int) (*domain.Profile, int) {
	valid := make([]domain.Observation, 0, len(history))
	for _, observation := range history {
		if observation.HasQuantity() {
			valid = append(valid, observation)
		}
	}

	if len(valid) < minHistory || len(valid) == 0 {
		return nil, len(valid)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Period.Before(valid[j].Period)
	})

	quantities := make([]float64, len(valid))
	points := make([]MonthlyQuantity, len(valid))
	for i, observation := range valid {
		quantities[i] = observation.Qty()
		points[i] = MonthlyQuantity{Month: observation.Period.Month(), Quantity: observation.Qty()}
	}

	slope, intercept := LinearTrend(quantities)

	start := len(quantities) - windowSize
	if start < 0 {
		start = 0
	}

	return &domain.Profile{
		EntityID:      entityID,
		MeanQty:       utils.RoundWithTwoDecimalPlace(Mean(quantities)),
		StdDevQty:     utils.RoundWithTwoDecimalPlace(PopulationStdDev(quantities)),
		Slope:         utils.RoundWithFourDecimalPlace(slope),
		Intercept:     utils.RoundWithTwoDecimalPlace(intercept),
		LastSixMonths: append([]float64{}, quantities[start:]...),
		Seasonality:   seasonalityLabels(SeasonalMeans(points)),
		LastUpdated:   domain.NormalizePeriod(valid[len(valid)-1].Period),
	}, len(valid)
}

// groupByEntity agrupa as observações por item, mantendo a ordem da primeira aparição
func groupByEntity(observations []domain.Observation) ([]string, map[string][]domain.Observation) {
	order := make([]string, 0)
	groups := make(map[string][]domain.Observation)

	for _, observation := range observations {
		if _, exists := groups[observation.EntityID]; !exists {
			order = append(order, observation.EntityID)
		}
		groups[observation.EntityID] = append(groups[observation.EntityID], observation)
	}

	return order, groups
}

func seasonalityLabels(means map[time.Month]float64) map[string]float64 {
	labels := make(map[string]float64, len(means))
	for month, mean := range means {
		labels[domain.MonthLabel(month)] = utils.RoundWithTwoDecimalPlace(mean)
	}
	return labels
}
