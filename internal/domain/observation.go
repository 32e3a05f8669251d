package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	PeriodLayout = "2006-01-02" // Formato de last_updated (yyyy-mm-dd)
	MonthLayout  = "2006-01"    // Formato do mês de previsão (yyyy-mm)
)

var periodLayouts = []string{
	PeriodLayout,
	MonthLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// Observation representa a quantidade pedida de um item em um mês
type Observation struct {
	EntityID string    `json:"item_code"`
	Period   time.Time `json:"period"`
	Quantity *float64  `json:"order_qty"` // nil quando a quantidade está ausente
}

// NewObservation cria uma observação com quantidade presente
func NewObservation(entityID string, period time.Time, quantity float64) Observation {
	return Observation{
		EntityID: entityID,
		Period:   NormalizePeriod(period),
		Quantity: &quantity,
	}
}

// HasQuantity indica se a observação possui uma quantidade válida (não ausente e não NaN)
func (o Observation) HasQuantity() bool {
	return o.Quantity != nil && !math.IsNaN(*o.Quantity)
}

// Qty retorna a quantidade ou zero quando ausente
func (o Observation) Qty() float64 {
	if !o.HasQuantity() {
		return 0
	}
	return *o.Quantity
}

// NormalizePeriod trunca a data para o primeiro dia do mês em UTC
func NormalizePeriod(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// ParsePeriod converte um texto de período (yyyy-mm, yyyy-mm-dd, ...) para o primeiro dia do mês
func ParsePeriod(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return NormalizePeriod(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("período inválido: %q", value)
}

// MonthLabel retorna a chave de sazonalidade ("1".."12") do mês
func MonthLabel(month time.Month) string {
	return fmt.Sprintf("%d", int(month))
}
