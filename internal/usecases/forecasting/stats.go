package forecasting

import (
	"math"
	"time"
)

// MonthlyQuantity é uma quantidade associada ao mês do calendário em que ocorreu
type MonthlyQuantity struct {
	Month    time.Month
	Quantity float64
}

// Mean retorna a média aritmética; zero para uma sequência vazia.
// A média é acumulada como deslocamento do primeiro valor, o que a torna exata para sequências constantes.
func Mean(q []float64) float64 {
	if len(q) == 0 {
		return 0
	}

	base := q[0]
	var offset float64
	for _, v := range q {
		offset += v - base
	}

	return base + offset/float64(len(q))
}

// PopulationStdDev retorna o desvio padrão populacional (divide por n)
func PopulationStdDev(q []float64) float64 {
	if len(q) == 0 {
		return 0
	}

	mean := Mean(q)
	var sumSquares float64
	for _, v := range q {
		d := v - mean
		sumSquares += d * d
	}

	return math.Sqrt(sumSquares / float64(len(q)))
}

// LinearTrend ajusta q[t] = slope*t + intercept por mínimos quadrados com t = 0..n-1.
// Com menos de dois pontos não há inclinação: retorna (0, média).
func LinearTrend(q []float64) (slope, intercept float64) {
	n := len(q)
	if n < 2 {
		return 0, Mean(q)
	}

	xMean := float64(n-1) / 2
	yMean := Mean(q)

	var sxx, sxy float64
	for t, y := range q {
		dx := float64(t) - xMean
		sxx += dx * dx
		sxy += dx * (y - yMean)
	}

	slope = sxy / sxx
	intercept = yMean - slope*xMean
	return slope, intercept
}

// SeasonalMeans agrupa as quantidades por mês do calendário e retorna a média de cada mês presente
func SeasonalMeans(points []MonthlyQuantity) map[time.Month]float64 {
	grouped := make(map[time.Month][]float64)
	for _, p := range points {
		grouped[p.Month] = append(grouped[p.Month], p.Quantity)
	}

	means := make(map[time.Month]float64, len(grouped))
	for month, quantities := range grouped {
		means[month] = Mean(quantities)
	}

	return means
}
