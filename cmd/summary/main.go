// Comando summary executa a carga inicial (-mode init) ou a atualização mensal (-mode update)
// a partir de um CSV com as colunas Item_Code, YearMonth e Order_Qty.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/feed"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-forecast-api/pkg/log"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

const (
	modeInit   = "init"
	modeUpdate = "update"
)

func main() {
	mode := flag.String("mode", modeInit, "init (histórico completo) ou update (lote mensal)")
	file := flag.String("file", "", "caminho do arquivo CSV de observações")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel, os.Stderr)

	if *file == "" {
		logrus.Fatal("Informe o arquivo de observações com -file")
	}

	observations, err := feed.ReadObservationsFile(*file)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler observações")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := repository.NewStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o armazenamento de perfis")
	}
	defer store.Close()

	forecaster := forecasting.NewService(store.Profiles, store.AppliedPeriods, cfg)

	var result any
	switch *mode {
	case modeInit:
		result, err = forecaster.InitializeProfiles(observations)
	case modeUpdate:
		result, err = forecaster.ApplyMonthlyUpdate(observations)
	default:
		logrus.Fatalf("Modo inválido %q: use %s ou %s", *mode, modeInit, modeUpdate)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao processar observações")
		store.Close()
		os.Exit(1)
	}

	fmt.Println(utils.PrettyJson(result))
}
