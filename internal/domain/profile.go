// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Profile é o resumo estatístico persistido de um item
type Profile struct {
	EntityID      string             `json:"item_code"`
	MeanQty       float64            `json:"mean_qty"`
	StdDevQty     float64            `json:"std_dev_qty"`
	Slope         float64            `json:"slope"`
	Intercept     float64            `json:"intercept"`
	LastSixMonths []float64          `json:"last_6_months"` // Do mais antigo para o mais recente
	Seasonality   map[string]float64 `json:"seasonality"`   // Chaves "1".."12"
	LastUpdated   time.Time          `json:"last_updated"`
}

// Clone retorna uma cópia profunda do perfil
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}

	clone := *p
	clone.LastSixMonths = append([]float64(nil), p.LastSixMonths...)
	if clone.LastSixMonths == nil {
		clone.LastSixMonths = []float64{}
	}

	clone.Seasonality = make(map[string]float64, len(p.Seasonality))
	for k, v := range p.Seasonality {
		clone.Seasonality[k] = v
	}

	return &clone
}

type profileAlias Profile

// MarshalJSON serializa last_updated como data (yyyy-mm-dd)
func (p Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		profileAlias
		LastUpdated string `json:"last_updated"`
	}{
		profileAlias: profileAlias(p),
		LastUpdated:  p.LastUpdated.Format(PeriodLayout),
	})
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	aux := struct {
		*profileAlias
		LastUpdated string `json:"last_updated"`
	}{
		profileAlias: (*profileAlias)(p),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.LastUpdated == "" {
		p.LastUpdated = time.Time{}
		return nil
	}

	lastUpdated, err := ParsePeriod(aux.LastUpdated)
	if err != nil {
		return err
	}
	p.LastUpdated = lastUpdated

	return nil
}

// SkipReason identifica por que um item não produziu ou atualizou um perfil
type SkipReason string

const (
	SkipInsufficientHistory SkipReason = "insufficient_history"
	SkipMissingProfile      SkipReason = "missing_profile"
	SkipMissingQuantity     SkipReason = "missing_quantity"
)

type SkippedEntity struct {
	EntityID          string     `json:"item_code"`
	Reason            SkipReason `json:"reason"`
	ValidObservations int        `json:"valid_observations,omitempty"`
}

// InitializeResult é o resultado da carga inicial de perfis
type InitializeResult struct {
	RunID    string          `json:"run_id"`
	Produced []string        `json:"produced"`
	Skipped  []SkippedEntity `json:"skipped"`
}

// MonthlyUpdateResult é o resultado da atualização mensal incremental
type MonthlyUpdateResult struct {
	RunID          string          `json:"run_id"`
	TargetPeriod   time.Time       `json:"target_period"`
	AlreadyApplied bool            `json:"already_applied"`
	Updated        []string        `json:"updated"`
	Skipped        []SkippedEntity `json:"skipped"`
	Profiles       []*Profile      `json:"profiles"`
}
