package repository

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// rowScanner é satisfeita por *sql.Row e *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func windowOrEmpty(window []float64) []float64 {
	if window == nil {
		return []float64{}
	}
	return window
}

func seasonalityOrEmpty(seasonality map[string]float64) map[string]float64 {
	if seasonality == nil {
		return map[string]float64{}
	}
	return seasonality
}
