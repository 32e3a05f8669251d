package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas, empates para o par
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.RoundToEven(f*100) / 100
}

func RoundWithFourDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.RoundToEven(f*10000) / 10000
}
