package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		Redis          *redis.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App      App
		Session  Session
		Upstream Upstream
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Address         string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	Session struct {
		CookieName   string
		JWTSecret    string
		TTLInMinutes int
	}

	// Upstream holds the base URLs of the backing microservices the
	// portal fans out to.
	Upstream struct {
		LedgerBaseURL     string
		ConnectorBaseURL  string
		AdminusersBaseURL string
		ProductsBaseURL   string
		PublicAuthBaseURL string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
