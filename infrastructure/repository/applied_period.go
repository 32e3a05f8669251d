package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

//go:generate mockgen -source=applied_period.go -destination=mocks/mock_applied_period.go -package=mocks

const (
	appliedPeriodsTable = "profile_update_ledger pul"
)

// AppliedPeriodRepository registra os períodos já aplicados pela atualização mensal
type AppliedPeriodRepository interface {
	IsApplied(period time.Time) (bool, error)
	MarkApplied(period time.Time, runID string) error
}

type appliedPeriodRepository struct {
	conn *postgres.Connection
}

func NewAppliedPeriodRepository(conn *postgres.Connection) AppliedPeriodRepository {
	return &appliedPeriodRepository{
		conn: conn,
	}
}

func (r *appliedPeriodRepository) IsApplied(period time.Time) (bool, error) {
	query, args, err := squirrel.
		Select("pul.period").
		From(appliedPeriodsTable).
		Where(squirrel.Eq{"pul.period": period.Format(domain.PeriodLayout)}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var applied time.Time
	if err := r.conn.QueryRow(query, args...).Scan(&applied); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao consultar período aplicado: %w", err)
	}

	return true, nil
}

func (r *appliedPeriodRepository) MarkApplied(period time.Time, runID string) error {
	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("profile_update_ledger").
		Columns("period", "run_id").
		Values(period.Format(domain.PeriodLayout), runID).
		Suffix("ON CONFLICT (period) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao registrar período aplicado: %w", err)
	}

	return nil
}

type memoryAppliedPeriodRepository struct {
	mu      sync.RWMutex
	periods map[string]string
}

func NewMemoryAppliedPeriodRepository() AppliedPeriodRepository {
	return &memoryAppliedPeriodRepository{
		periods: make(map[string]string),
	}
}

func (r *memoryAppliedPeriodRepository) IsApplied(period time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.periods[period.Format(domain.PeriodLayout)]
	return exists, nil
}

func (r *memoryAppliedPeriodRepository) MarkApplied(period time.Time, runID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := period.Format(domain.PeriodLayout)
	if _, exists := r.periods[key]; !exists {
		r.periods[key] = runID
	}
	return nil
}
