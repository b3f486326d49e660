package routers

import (
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/controllers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
)

func attachTokenRoutes(router chi.Router, middlewares *middlewares.Middlewares, tokenController *controllers.TokenController) {
	router.Route("/tokens", func(r chi.Router) {
		r.With(middlewares.Authenticate).Get("/", tokenController.ListActiveTokens)
		r.With(middlewares.Authenticate).Post("/", tokenController.CreateToken)
		r.With(middlewares.Authenticate).Delete("/", tokenController.RevokeToken)
	})
}
