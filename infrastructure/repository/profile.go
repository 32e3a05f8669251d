// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
)

//go:generate mockgen -source=profile.go -destination=mocks/mock_profile.go -package=mocks

const (
	profilesTable   = "item_profiles ip"
	profilesColumns = "ip.entity_id, ip.mean_qty, ip.std_dev_qty, ip.slope, ip.intercept, ip.last_6_months, ip.seasonality, ip.last_updated"
)

// ErrProfileNotFound é retornado por Update quando o item não possui perfil
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository é o armazenamento de perfis, um documento por item
type ProfileRepository interface {
	FindOne(entityID string) (*domain.Profile, error)
	FindAll() ([]*domain.Profile, error)
	FindOneByLastUpdated(period time.Time) (*domain.Profile, error)
	// Upsert substitui todos os campos do perfil, criando-o se necessário
	Upsert(profile *domain.Profile) error
	// Update altera os campos recalculados de um perfil existente
	Update(profile *domain.Profile) error
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func (r *profileRepository) FindOne(entityID string) (*domain.Profile, error) {
	query, args, err := squirrel.
		Select(profilesColumns).
		From(profilesTable).
		Where(squirrel.Eq{"ip.entity_id": entityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile, err := r.scanProfile(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) FindAll() ([]*domain.Profile, error) {
	query, args, err := squirrel.
		Select(profilesColumns).
		From(profilesTable).
		OrderBy("ip.entity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		profile, err := r.scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear perfis: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

func (r *profileRepository) FindOneByLastUpdated(period time.Time) (*domain.Profile, error) {
	query, args, err := squirrel.
		Select(profilesColumns).
		From(profilesTable).
		Where(squirrel.Eq{"ip.last_updated": period.Format(domain.PeriodLayout)}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	profile, err := r.scanProfile(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
	}

	return profile, nil
}

func (r *profileRepository) Upsert(profile *domain.Profile) error {
	seasonalityJSON, err := json.Marshal(seasonalityOrEmpty(profile.Seasonality))
	if err != nil {
		return fmt.Errorf("erro ao serializar seasonality para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("item_profiles").
		Columns("entity_id", "mean_qty", "std_dev_qty", "slope", "intercept", "last_6_months", "seasonality", "last_updated").
		Values(
			profile.EntityID,
			profile.MeanQty,
			profile.StdDevQty,
			profile.Slope,
			profile.Intercept,
			pq.Array(windowOrEmpty(profile.LastSixMonths)),
			seasonalityJSON,
			profile.LastUpdated.Format(domain.PeriodLayout),
		).
		Suffix(`
			ON CONFLICT (entity_id) DO UPDATE SET
				mean_qty = EXCLUDED.mean_qty,
				std_dev_qty = EXCLUDED.std_dev_qty,
				slope = EXCLUDED.slope,
				intercept = EXCLUDED.intercept,
				last_6_months = EXCLUDED.last_6_months,
				seasonality = EXCLUDED.seasonality,
				last_updated = EXCLUDED.last_updated,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *profileRepository) Update(profile *domain.Profile) error {
	seasonalityJSON, err := json.Marshal(seasonalityOrEmpty(profile.Seasonality))
	if err != nil {
		return fmt.Errorf("erro ao serializar seasonality para JSON: %w", err)
	}

	sqlQuery, args, err := squirrel.
		Update("item_profiles").
		SetMap(map[string]any{
			"mean_qty":      profile.MeanQty,
			"std_dev_qty":   profile.StdDevQty,
			"slope":         profile.Slope,
			"intercept":     profile.Intercept,
			"last_6_months": pq.Array(windowOrEmpty(profile.LastSixMonths)),
			"seasonality":   seasonalityJSON,
			"last_updated":  profile.LastUpdated.Format(domain.PeriodLayout),
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"entity_id": profile.EntityID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, profile.EntityID)
	}

	return nil
}

func (r *profileRepository) scanProfile(row rowScanner) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var window pq.Float64Array
	var seasonalityJSON []byte

	err := row.Scan(
		&profile.EntityID,
		&profile.MeanQty,
		&profile.StdDevQty,
		&profile.Slope,
		&profile.Intercept,
		&window,
		&seasonalityJSON,
		&profile.LastUpdated,
	)
	if err != nil {
		return nil, err
	}

	profile.LastSixMonths = windowOrEmpty(window)
	profile.LastUpdated = domain.NormalizePeriod(profile.LastUpdated)
	profile.Seasonality = map[string]float64{}

	if seasonalityJSON != nil {
		if err := json.Unmarshal(seasonalityJSON, &profile.Seasonality); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de seasonality: %w", err)
		}
	}

	return profile, nil
}
