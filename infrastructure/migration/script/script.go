package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
)

type migration struct {
	name      string
	statement string
}

var migrations = []migration{
	{
		name: "criar tabela item_profiles",
		statement: `CREATE TABLE IF NOT EXISTS item_profiles (
			entity_id     TEXT PRIMARY KEY,
			mean_qty      DOUBLE PRECISION NOT NULL,
			std_dev_qty   DOUBLE PRECISION NOT NULL,
			slope         DOUBLE PRECISION NOT NULL,
			intercept     DOUBLE PRECISION NOT NULL,
			last_6_months DOUBLE PRECISION[] NOT NULL DEFAULT '{}',
			seasonality   JSONB NOT NULL DEFAULT '{}'::jsonb,
			last_updated  DATE NOT NULL,
			created_at    TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name:      "criar índice item_profiles.last_updated",
		statement: `CREATE INDEX IF NOT EXISTS idx_item_profiles_last_updated ON item_profiles (last_updated)`,
	},
	{
		name: "criar tabela profile_update_ledger",
		statement: `CREATE TABLE IF NOT EXISTS profile_update_ledger (
			period     DATE PRIMARY KEY,
			run_id     TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	},
}

func main() {
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, m := range migrations {
			if _, err := tx.ExecContext(ctx, m.statement); err != nil {
				logrus.WithError(err).WithField("migration", m.name).Error("Erro ao executar migração")
				return err
			}
			logrus.WithField("migration", m.name).Info("Migração executada")
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração revertida")
	}

	logrus.WithFields(logrus.Fields{
		"migrations": len(migrations),
		"duration":   time.Since(startTime).String(),
	}).Info("Script de migração concluído com sucesso")
}
