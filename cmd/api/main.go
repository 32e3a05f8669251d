package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/feed"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository"
	"github.com/vfg2006/inventory-forecast-api/internal/api"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/scheduler"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-forecast-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := repository.NewStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento de perfis")
	}
	defer store.Close()

	forecaster := forecasting.NewService(store.Profiles, store.AppliedPeriods, cfg)

	profileUpdateSyncService := scheduler.NewProfileUpdateSyncService(
		forecaster,
		feed.NewLoader(cfg.ProfileUpdateSync).Load,
		cfg,
	)

	if err := profileUpdateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização mensal de perfis")
	} else {
		logrus.Info("Agendador de atualização mensal de perfis iniciado com sucesso")
	}

	server, err := api.New(cfg, forecaster, profileUpdateSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
