package routers

import (
	"fmt"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/controllers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/middlewares"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/go-chi/chi/v5"
)

const (
	accountParam     = constvars.ParamAccountID
	transactionParam = constvars.ParamTransactionID
)

func attachTransactionRoutes(router chi.Router, middlewares *middlewares.Middlewares, transactionController *controllers.TransactionController) {
	router.With(middlewares.Authenticate).Get("/transactions", transactionController.ListTransactions)
	router.With(middlewares.Authenticate).Get("/transactions-summary", transactionController.GetTransactionSummary)

	router.Route(fmt.Sprintf("/transactions/{%s}", transactionParam), func(r chi.Router) {
		r.With(middlewares.Authenticate).Get("/", transactionController.GetTransactionDetail)
		r.With(middlewares.Authenticate).Get("/events", transactionController.GetTransactionEvents)
		r.With(middlewares.Authenticate).Post("/refunds", transactionController.SubmitRefund)
	})
}
