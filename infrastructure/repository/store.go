package repository

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/redisdb"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
)

// Store agrupa os repositórios usados pelo serviço de previsão e a função que libera as conexões
type Store struct {
	Profiles       ProfileRepository
	AppliedPeriods AppliedPeriodRepository
	Close          func() error
}

// NewStore abre o armazenamento de perfis escolhido em PROFILE_STORE
func NewStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	logger := logrus.WithField("profile_store", cfg.ProfileStore)

	switch cfg.ProfileStore {
	case config.ProfileStorePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		logger.Info("Conexão com PostgreSQL estabelecida com sucesso")

		return &Store{
			Profiles:       NewProfileRepository(conn),
			AppliedPeriods: NewAppliedPeriodRepository(conn),
			Close:          conn.Close,
		}, nil

	case config.ProfileStoreRedis:
		client, err := redisdb.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao Redis: %w", err)
		}
		logger.Info("Conexão com Redis estabelecida com sucesso")

		return &Store{
			Profiles: NewRedisProfileRepository(client, cfg.Redis.KeyPrefix, cfg.Redis.Timeout),
			Close:    client.Close,
		}, nil

	case config.ProfileStoreMemory:
		logger.Warn("Perfis mantidos apenas em memória, serão perdidos ao encerrar o processo")

		return &Store{
			Profiles:       NewMemoryProfileRepository(),
			AppliedPeriods: NewMemoryAppliedPeriodRepository(),
			Close:          func() error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("armazenamento de perfis desconhecido: %q", cfg.ProfileStore)
}
