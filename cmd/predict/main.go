// Comando predict imprime em stdout as previsões do próximo mês como JSON.
// Em caso de falha imprime {"error": "..."} e encerra com código 1. Logs vão para stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/repository"
	"github.com/vfg2006/inventory-forecast-api/internal/config"
	"github.com/vfg2006/inventory-forecast-api/internal/domain"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-forecast-api/pkg/log"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	monthFlag := flag.String("month", "", "mês de previsão no formato yyyy-mm (padrão: mês atual)")
	flag.Parse()

	os.Exit(execute(*monthFlag, os.Stdout))
}

// execute grava em out apenas o JSON de resultado ou de erro e devolve o código de saída
func execute(monthStr string, out io.Writer) int {
	if err := run(monthStr, out); err != nil {
		logrus.WithError(err).Error("Falha ao calcular previsões")
		writeError(out, err)
		return 1
	}
	return 0
}

func run(monthStr string, out io.Writer) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log.Setup(cfg.App.LogLevel, os.Stderr)

	month, err := utils.ParseForecastMonth(monthStr, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := repository.NewStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	forecaster := forecasting.NewService(store.Profiles, store.AppliedPeriods, cfg)

	predictions, err := forecaster.PredictNextMonth(month)
	if err != nil {
		return err
	}

	return json.NewEncoder(out).Encode(forecasting.TopPredictions(predictions, cfg.Forecast.TopN))
}

func writeError(out io.Writer, err error) {
	if encodeErr := json.NewEncoder(out).Encode(domain.PredictionError{Error: err.Error()}); encodeErr != nil {
		fmt.Fprintf(os.Stderr, "erro ao codificar resposta: %v\n", encodeErr)
	}
}
