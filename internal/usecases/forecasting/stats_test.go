package forecasting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "sequência vazia", input: nil, expected: 0},
		{name: "valor único", input: []float64{7}, expected: 7},
		{name: "sequência constante", input: []float64{3.3, 3.3, 3.3, 3.3}, expected: 3.3},
		{name: "histórico de exemplo", input: []float64{10, 12, 11, 13, 15, 14}, expected: 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.input), 1e-12)
		})
	}
}

func TestPopulationStdDev(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "sequência vazia", input: nil, expected: 0},
		{name: "valor único", input: []float64{4}, expected: 0},
		{name: "divide por n", input: []float64{2, 4, 4, 4, 5, 5, 7, 9}, expected: 2},
		{name: "histórico de exemplo", input: []float64{10, 12, 11, 13, 15, 14}, expected: 1.707825127659933},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PopulationStdDev(tt.input), 1e-9)
		})
	}
}

func TestPopulationStdDev_ConstantIsExactlyZero(t *testing.T) {
	assert.Equal(t, 0.0, PopulationStdDev([]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1}))
}

func TestLinearTrend(t *testing.T) {
	tests := []struct {
		name              string
		input             []float64
		expectedSlope     float64
		expectedIntercept float64
	}{
		{name: "menos de dois pontos", input: []float64{9}, expectedSlope: 0, expectedIntercept: 9},
		{name: "reta perfeita", input: []float64{1, 2, 3}, expectedSlope: 1, expectedIntercept: 1},
		{name: "sequência constante", input: []float64{5, 5, 5, 5}, expectedSlope: 0, expectedIntercept: 5},
		{name: "histórico de exemplo", input: []float64{10, 12, 11, 13, 15, 14}, expectedSlope: 15.5 / 17.5, expectedIntercept: 12.5 - 2.5*15.5/17.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slope, intercept := LinearTrend(tt.input)
			assert.InDelta(t, tt.expectedSlope, slope, 1e-9)
			assert.InDelta(t, tt.expectedIntercept, intercept, 1e-9)
		})
	}
}

func TestSeasonalMeans(t *testing.T) {
	points := []MonthlyQuantity{
		{Month: time.January, Quantity: 10},
		{Month: time.February, Quantity: 4},
		{Month: time.January, Quantity: 20},
	}

	means := SeasonalMeans(points)

	assert.Len(t, means, 2)
	assert.InDelta(t, 15.0, means[time.January], 1e-12)
	assert.InDelta(t, 4.0, means[time.February], 1e-12)
	_, exists := means[time.March]
	assert.False(t, exists)
}
