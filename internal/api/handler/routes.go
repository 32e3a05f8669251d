package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-forecast-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-forecast-api/internal/usecases/forecasting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Forecast(service forecasting.Forecaster, defaultLimit int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecast/predictions",
			Method:  http.MethodGet,
			Handler: GetPredictions(service, defaultLimit),
		},
		{
			Path:    "/v1/forecast/profiles",
			Method:  http.MethodGet,
			Handler: ListProfiles(service),
		},
		{
			Path:    "/v1/forecast/profiles/:id",
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
		{
			Path:    "/v1/forecast/profiles/initialize",
			Method:  http.MethodPost,
			Handler: InitializeProfiles(service),
		},
		{
			Path:    "/v1/forecast/profiles/monthly",
			Method:  http.MethodPost,
			Handler: ApplyMonthlyUpdate(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
