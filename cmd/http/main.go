package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/config"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/controllers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/middlewares"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/routers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/drivers/database"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/drivers/logger"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/accounts"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/adminusers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/connector"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/ledger"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/products"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/publicauth"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/sessions"
	sharedRedis "github.com/alphagov/pay-selfservice-sub005/internal/app/services/shared/redis"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/services/transactions"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Upstream clients
	ledgerClient := ledger.NewLedgerClient(bootstrap.InternalConfig.Upstream.LedgerBaseURL, bootstrap.Logger)
	connectorClient := connector.NewConnectorClient(bootstrap.InternalConfig.Upstream.ConnectorBaseURL, bootstrap.Logger)
	adminusersClient := adminusers.NewAdminusersClient(bootstrap.InternalConfig.Upstream.AdminusersBaseURL, bootstrap.Logger)
	productsClient := products.NewProductsClient(bootstrap.InternalConfig.Upstream.ProductsBaseURL, bootstrap.Logger)
	publicAuthClient := publicauth.NewPublicAuthClient(bootstrap.InternalConfig.Upstream.PublicAuthBaseURL, bootstrap.Logger)

	// Sessions
	sessionUsecase := sessions.NewSessionUsecase(redisRepository, adminusersClient, bootstrap.InternalConfig.Session, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionUsecase, bootstrap.InternalConfig, bootstrap.Logger)

	// Transactions
	transactionUsecase := transactions.NewTransactionUsecase(ledgerClient, connectorClient, bootstrap.Logger)
	transactionController := controllers.NewTransactionController(bootstrap.Logger, transactionUsecase)

	// Gateway accounts
	accountUsecase := accounts.NewAccountUsecase(connectorClient)
	accountController := controllers.NewAccountController(bootstrap.Logger, accountUsecase)

	// API tokens
	tokenUsecase := publicauth.NewTokenUsecase(publicAuthClient)
	tokenController := controllers.NewTokenController(bootstrap.Logger, tokenUsecase)

	// Payment links
	productUsecase := products.NewProductUsecase(productsClient)
	productController := controllers.NewProductController(bootstrap.Logger, productUsecase)

	// Users
	userController := controllers.NewUserController(bootstrap.Logger, sessionUsecase, adminusersClient, bootstrap.InternalConfig.Session)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		transactionController,
		accountController,
		tokenController,
		productController,
		userController,
	)
}
