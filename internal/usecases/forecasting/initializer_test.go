package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

func TestBuildProfile(t *testing.T) {
	t.Run("histórico de seis meses", func(t *testing.T) {
		profile, valid := BuildProfile("A1", sixMonthHistory("A1", 10, 12, 11, 13, 15, 14), 6, 6)

		require.NotNil(t, profile)
		assert.Equal(t, 6, valid)
		assert.Equal(t, "A1", profile.EntityID)
		assert.InDelta(t, 12.5, profile.MeanQty, 1e-9)
		assert.InDelta(t, 1.71, profile.StdDevQty, 1e-9)
		assert.InDelta(t, 0.8857, profile.Slope, 1e-9)
		assert.InDelta(t, 10.29, profile.Intercept, 1e-9)
		assert.Equal(t, []float64{10, 12, 11, 13, 15, 14}, profile.LastSixMonths)
		assert.Equal(t, map[string]float64{"1": 10, "2": 12, "3": 11, "4": 13, "5": 15, "6": 14}, profile.Seasonality)
		assert.Equal(t, month(2025, time.June), profile.LastUpdated)
	})

	t.Run("observações fora de ordem são ordenadas por período", func(t *testing.T) {
		history := sixMonthHistory("A1", 10, 12, 11, 13, 15, 14)
		shuffled := []domain.Observation{history[5], history[2], history[0], history[4], history[1], history[3]}

		profile, _ := BuildProfile("A1", shuffled, 6, 6)

		require.NotNil(t, profile)
		assert.Equal(t, []float64{10, 12, 11, 13, 15, 14}, profile.LastSixMonths)
		assert.Equal(t, month(2025, time.June), profile.LastUpdated)
	})

	t.Run("histórico insuficiente", func(t *testing.T) {
		profile, valid := BuildProfile("B2", sixMonthHistory("B2", 1, 2, 3, 4, 5), 6, 6)

		assert.Nil(t, profile)
		assert.Equal(t, 5, valid)
	})

	t.Run("quantidades ausentes não contam como histórico válido", func(t *testing.T) {
		history := sixMonthHistory("C3", 1, 2, 3, 4, 5, 6)
		history[2] = missing("C3", month(2025, time.March))

		profile, valid := BuildProfile("C3", history, 6, 6)

		assert.Nil(t, profile)
		assert.Equal(t, 5, valid)
	})

	t.Run("histórico longo usa estatísticas completas e janela dos seis últimos", func(t *testing.T) {
		history := sixMonthHistory("D4", 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10)
		history = append(history,
			observation("D4", month(2026, time.January), 30),
			observation("D4", month(2026, time.February), 10),
		)

		profile, valid := BuildProfile("D4", history, 6, 6)

		require.NotNil(t, profile)
		assert.Equal(t, 14, valid)
		assert.InDelta(t, 11.43, profile.MeanQty, 1e-9)
		assert.Equal(t, []float64{10, 10, 10, 10, 30, 10}, profile.LastSixMonths)
		assert.InDelta(t, 20.0, profile.Seasonality["1"], 1e-9)
		assert.InDelta(t, 10.0, profile.Seasonality["2"], 1e-9)
		assert.Equal(t, month(2026, time.February), profile.LastUpdated)
	})

	t.Run("média empatada arredonda para o par", func(t *testing.T) {
		profile, _ := BuildProfile("F6", sixMonthHistory("F6", 12, 12, 12, 12, 12, 12, 12, 13), 6, 6)

		require.NotNil(t, profile)
		assert.Equal(t, 12.12, profile.MeanQty)
	})

	t.Run("sequência constante tem desvio zero", func(t *testing.T) {
		profile, _ := BuildProfile("E5", sixMonthHistory("E5", 7, 7, 7, 7, 7, 7), 6, 6)

		require.NotNil(t, profile)
		assert.Equal(t, 0.0, profile.StdDevQty)
		assert.Equal(t, 0.0, profile.Slope)
		assert.Equal(t, 7.0, profile.Intercept)
	})
}

func TestGroupByEntity(t *testing.T) {
	observations := []domain.Observation{
		observation("B", month(2025, time.January), 1),
		observation("A", month(2025, time.January), 2),
		observation("B", month(2025, time.February), 3),
	}

	order, groups := groupByEntity(observations)

	assert.Equal(t, []string{"B", "A"}, order)
	assert.Len(t, groups["B"], 2)
	assert.Len(t, groups["A"], 1)
}
