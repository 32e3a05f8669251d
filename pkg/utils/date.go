package utils

import (
	"fmt"
	"time"
)

// ParseForecastMonth converte "yyyy-mm" no mês do calendário; vazio usa o mês de now
func ParseForecastMonth(monthStr string, now time.Time) (time.Month, error) {
	if monthStr == "" {
		return now.Month(), nil
	}

	date, err := time.Parse("2006-01", monthStr)
	if err != nil {
		return 0, fmt.Errorf("mês de previsão inválido %q: esperado formato yyyy-mm", monthStr)
	}

	return date.Month(), nil
}
