package routers

import (
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/controllers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
)

func attachAccountRoutes(router chi.Router, middlewares *middlewares.Middlewares, accountController *controllers.AccountController) {
	router.With(middlewares.Authenticate).Get("/", accountController.GetGatewayAccount)
	router.With(middlewares.Authenticate).Get("/card-types", accountController.GetAcceptedCardTypes)
}
