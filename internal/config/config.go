package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ProfileStorePostgres = "postgres"
	ProfileStoreRedis    = "redis"
	ProfileStoreMemory   = "memory"

	IdempotencyGlobal = "global"
	IdempotencyLedger = "ledger"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Redis             Redis             `mapstructure:",squash"`
	Forecast          Forecast          `mapstructure:",squash"`
	ProfileUpdateSync ProfileUpdateSync `mapstructure:",squash"`
	ProfileStore      string            `mapstructure:"profile_store"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr      string        `mapstructure:"redis_addr"`
	Password  string        `mapstructure:"redis_password"`
	DB        int           `mapstructure:"redis_db"`
	KeyPrefix string        `mapstructure:"redis_key_prefix"`
	Timeout   time.Duration `mapstructure:"redis_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Forecast struct {
	MinHistory      int    `mapstructure:"forecast_min_history"`
	WindowSize      int    `mapstructure:"forecast_window_size"`
	TopN            int    `mapstructure:"forecast_top_n"`
	IdempotencyMode string `mapstructure:"forecast_idempotency_mode"`
}

type ProfileUpdateSync struct {
	CronSchedule string        `mapstructure:"profile_update_sync_cron"`
	Enabled      bool          `mapstructure:"profile_update_sync_enabled"`
	FeedPath     string        `mapstructure:"profile_update_feed_path"` // Arquivo local ou URL http(s)
	FeedToken    string        `mapstructure:"profile_update_feed_token"`
	FeedTimeout  time.Duration `mapstructure:"profile_update_feed_timeout"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/forecast?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PROFILE_STORE", ProfileStorePostgres)

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_KEY_PREFIX", "forecast")
	viper.SetDefault("REDIS_TIMEOUT", "5s")

	// Defaults do motor de previsão
	viper.SetDefault("FORECAST_MIN_HISTORY", 6)                       // Meses válidos mínimos para criar um perfil
	viper.SetDefault("FORECAST_WINDOW_SIZE", 6)                       // Tamanho da janela last_6_months
	viper.SetDefault("FORECAST_TOP_N", 100)                           // Itens retornados pela previsão
	viper.SetDefault("FORECAST_IDEMPOTENCY_MODE", IdempotencyGlobal) // global ou ledger

	viper.SetDefault("PROFILE_UPDATE_SYNC_CRON", "0 6 1 * *") // No primeiro dia de cada mês às 6h da manhã
	viper.SetDefault("PROFILE_UPDATE_SYNC_ENABLED", false)
	viper.SetDefault("PROFILE_UPDATE_FEED_PATH", "data/current_month.csv")
	viper.SetDefault("PROFILE_UPDATE_FEED_TOKEN", "")
	viper.SetDefault("PROFILE_UPDATE_FEED_TIMEOUT", "30s")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações inválidas de configuração
func (c *Config) Validate() error {
	c.ProfileStore = strings.ToLower(c.ProfileStore)
	switch c.ProfileStore {
	case ProfileStorePostgres, ProfileStoreRedis, ProfileStoreMemory:
	default:
		return fmt.Errorf("config: PROFILE_STORE inválido: %q", c.ProfileStore)
	}

	c.Forecast.IdempotencyMode = strings.ToLower(c.Forecast.IdempotencyMode)
	switch c.Forecast.IdempotencyMode {
	case IdempotencyGlobal, IdempotencyLedger:
	default:
		return fmt.Errorf("config: FORECAST_IDEMPOTENCY_MODE inválido: %q", c.Forecast.IdempotencyMode)
	}

	if c.Forecast.IdempotencyMode == IdempotencyLedger && c.ProfileStore == ProfileStoreRedis {
		return fmt.Errorf("config: FORECAST_IDEMPOTENCY_MODE=ledger requer PROFILE_STORE postgres ou memory")
	}

	if c.Forecast.WindowSize < 2 {
		return fmt.Errorf("config: FORECAST_WINDOW_SIZE deve ser >= 2, recebido %d", c.Forecast.WindowSize)
	}

	if c.Forecast.MinHistory < c.Forecast.WindowSize {
		return fmt.Errorf("config: FORECAST_MIN_HISTORY (%d) deve ser >= FORECAST_WINDOW_SIZE (%d)", c.Forecast.MinHistory, c.Forecast.WindowSize)
	}

	if c.Forecast.TopN <= 0 {
		return fmt.Errorf("config: FORECAST_TOP_N deve ser positivo, recebido %d", c.Forecast.TopN)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
