package forecasting

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

// PredictQuantity prevê a quantidade do próximo mês para um perfil.
// O segundo retorno é false quando a janela tem menos de dois valores.
func PredictQuantity(profile *domain.Profile, month time.Month) (int, bool) {
	window := profile.LastSixMonths
	if len(window) < 2 {
		return 0, false
	}

	recentAvg := Mean(window)

	// A reta é avaliada em t = len(janela), um passo além do último índice
	trendEstimate := profile.Slope*float64(len(window)) + profile.Intercept

	seasonalFactor, exists := profile.Seasonality[domain.MonthLabel(month)]
	if !exists {
		seasonalFactor = profile.MeanQty
	}
	seasonalBoost := seasonalFactor - profile.MeanQty

	predicted := math.RoundToEven(trendEstimate + recentAvg + seasonalBoost)
	if predicted < 0 {
		predicted = 0
	}

	return int(predicted), true
}

// RankPredictions calcula a previsão de cada perfil e ordena por quantidade decrescente.
// Empates mantêm a ordem de entrada.
func RankPredictions(profiles []*domain.Profile, month time.Month) []domain.Prediction {
	predictions := make([]domain.Prediction, 0, len(profiles))
	for _, profile := range profiles {
		quantity, ok := PredictQuantity(profile, month)
		if !ok {
			continue
		}
		predictions = append(predictions, domain.Prediction{
			EntityID:     profile.EntityID,
			PredictedQty: quantity,
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].PredictedQty > predictions[j].PredictedQty
	})

	return predictions
}

// TopPredictions limita a lista ranqueada aos n primeiros itens
func TopPredictions(predictions []domain.Prediction, n int) []domain.Prediction {
	if n <= 0 || n >= len(predictions) {
		return predictions
	}
	return predictions[:n]
}
