package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/inventory-forecast-api/infrastructure/feed"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/inventory-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-forecast-api/pkg/log"
	"github.com/vfg2006/inventory-forecast-api/pkg/utils"
)

// Tamanho máximo aceito para o CSV enviado no corpo da requisição
const maxFeedBodyBytes = 32 << 20

// GetPredictions retorna os itens com maior quantidade prevista para o mês informado (?month=yyyy-mm)
func GetPredictions(service forecasting.Forecaster, defaultLimit int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, err := utils.ParseForecastMonth(r.URL.Query().Get("month"), time.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err = strconv.Atoi(raw)
			if err != nil || limit <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
		}

		predictions, err := service.PredictNextMonth(month)
		if err != nil {
			logger.WithError(err).Error("predictions: erro ao calcular previsões")
			writeForecastError(w, err)
			return
		}

		top := forecasting.TopPredictions(predictions, limit)

		logger.WithFields(log.Fields{
			"month":    int(month),
			"limit":    limit,
			"returned": len(top),
		}).Info("predictions: previsões calculadas")

		writeJSON(w, http.StatusOK, top)
	})
}

// ListProfiles retorna todos os perfis armazenados
func ListProfiles(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profiles, err := service.ListProfiles()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("profiles: erro ao listar perfis")
			writeForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profiles)
	})
}

// GetProfile retorna o perfil de um item
func GetProfile(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entityID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if entityID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Item não especificado", nil)
			return
		}

		profile, err := service.GetProfile(entityID)
		if err != nil {
			writeForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	})
}

// InitializeProfiles recria os perfis a partir do histórico completo enviado como CSV
func InitializeProfiles(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		observations, err := feed.ReadObservations(http.MaxBytesReader(w, r.Body, maxFeedBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("profiles-initialize: CSV inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.InitializeProfiles(observations)
		if err != nil {
			logger.WithError(err).Error("profiles-initialize: erro na carga inicial")
			writeForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// ApplyMonthlyUpdate aplica o lote mensal enviado como CSV
func ApplyMonthlyUpdate(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		observations, err := feed.ReadObservations(http.MaxBytesReader(w, r.Body, maxFeedBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("profiles-monthly: CSV inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.ApplyMonthlyUpdate(observations)
		if err != nil {
			logger.WithError(err).Error("profiles-monthly: erro na atualização mensal")
			writeForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// writeForecastError traduz o erro do serviço para a resposta padronizada da API
func writeForecastError(w http.ResponseWriter, err error) {
	var forecastErr *forecasting.ForecastError
	if !errors.As(err, &forecastErr) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
		return
	}

	var details any
	if forecastErr.EntityID != "" {
		details = map[string]string{"item_code": forecastErr.EntityID}
	}

	message := forecastErr.Err.Error()
	if errors.Is(err, forecasting.ErrUpstream) {
		message = "Falha no armazenamento de perfis"
	}

	apiErrors.WriteError(w, forecastErr.Code, message, details)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}
