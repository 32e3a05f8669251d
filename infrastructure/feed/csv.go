// Package feed lê os arquivos de pedidos mensais (Item_Code, YearMonth, Order_Qty)
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

var (
	ErrMissingColumn = errors.New("feed: coluna obrigatória ausente")
	ErrInvalidRow    = errors.New("feed: linha inválida")
)

// Nomes aceitos para cada coluna (comparação sem diferenciar maiúsculas)
var (
	entityColumns   = []string{"item_code", "entity_id", "item"}
	periodColumns   = []string{"yearmonth", "period", "date"}
	quantityColumns = []string{"order_qty", "quantity", "qty"}
)

var missingValues = map[string]struct{}{
	"":     {},
	"nan":  {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"none": {},
}

// ReadObservationsFile abre e lê um arquivo CSV de observações
func ReadObservationsFile(path string) ([]domain.Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("feed: erro ao abrir %s: %w", path, err)
	}
	defer file.Close()

	return ReadObservations(file)
}

// ReadObservations lê observações de um CSV com cabeçalho.
// Quantidades vazias ou NaN viram observações sem quantidade.
func ReadObservations(r io.Reader) ([]domain.Observation, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Observation{}, nil
		}
		return nil, fmt.Errorf("feed: erro ao ler cabeçalho: %w", err)
	}

	entityIdx, err := columnIndex(header, entityColumns)
	if err != nil {
		return nil, err
	}
	periodIdx, err := columnIndex(header, periodColumns)
	if err != nil {
		return nil, err
	}
	quantityIdx, err := columnIndex(header, quantityColumns)
	if err != nil {
		return nil, err
	}

	observations := make([]domain.Observation, 0)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("feed: erro na linha %d: %w", line, err)
		}

		if isBlank(record) {
			continue
		}

		observation, err := parseRecord(record, entityIdx, periodIdx, quantityIdx)
		if err != nil {
			return nil, fmt.Errorf("%w (linha %d): %v", ErrInvalidRow, line, err)
		}
		observations = append(observations, observation)
	}

	return observations, nil
}

func parseRecord(record []string, entityIdx, periodIdx, quantityIdx int) (domain.Observation, error) {
	entityID := strings.TrimSpace(field(record, entityIdx))
	if entityID == "" {
		return domain.Observation{}, errors.New("item vazio")
	}

	period, err := domain.ParsePeriod(field(record, periodIdx))
	if err != nil {
		return domain.Observation{}, err
	}

	observation := domain.Observation{
		EntityID: entityID,
		Period:   period,
	}

	rawQty := strings.TrimSpace(field(record, quantityIdx))
	if _, missing := missingValues[strings.ToLower(rawQty)]; missing {
		return observation, nil
	}

	quantity, err := strconv.ParseFloat(rawQty, 64)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("quantidade inválida %q", rawQty)
	}
	observation.Quantity = &quantity

	return observation, nil
}

func columnIndex(header []string, names []string) (int, error) {
	for i, column := range header {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))
		for _, name := range names {
			if normalized == name {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrMissingColumn, names[0])
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}

func isBlank(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
