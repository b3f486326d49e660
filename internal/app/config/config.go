package config

import (
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/utils"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Address:         utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "selfservice"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Session: Session{
			CookieName:   utils.GetEnvString("SESSION_COOKIE_NAME", "selfservice_session"),
			JWTSecret:    utils.GetEnvString("SESSION_JWT_SECRET", ""),
			TTLInMinutes: utils.GetEnvInt("SESSION_TTL_IN_MINUTES", 90),
		},
		Upstream: Upstream{
			LedgerBaseURL:     utils.GetEnvString("LEDGER_BASE_URL", "http://localhost:9007"),
			ConnectorBaseURL:  utils.GetEnvString("CONNECTOR_BASE_URL", "http://localhost:9300"),
			AdminusersBaseURL: utils.GetEnvString("ADMINUSERS_BASE_URL", "http://localhost:9700"),
			ProductsBaseURL:   utils.GetEnvString("PRODUCTS_BASE_URL", "http://localhost:18000"),
			PublicAuthBaseURL: utils.GetEnvString("PUBLIC_AUTH_BASE_URL", "http://localhost:9600"),
		},
	}
}
