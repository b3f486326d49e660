package routers

import (
	"fmt"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/config"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/controllers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	transactionController *controllers.TransactionController,
	accountController *controllers.AccountController,
	tokenController *controllers.TokenController,
	productController *controllers.ProductController,
	userController *controllers.UserController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route(fmt.Sprintf("/accounts/{%s}", accountParam), func(r chi.Router) {
				attachAccountRoutes(r, middlewares, accountController)
				attachTransactionRoutes(r, middlewares, transactionController)
				attachTokenRoutes(r, middlewares, tokenController)
				attachProductRoutes(r, middlewares, productController)
			})
		})
	})
}
