package routers

import (
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/controllers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/middlewares"
	"github.com/go-chi/chi/v5"
)

func attachProductRoutes(router chi.Router, middlewares *middlewares.Middlewares, productController *controllers.ProductController) {
	router.With(middlewares.Authenticate).Get("/products", productController.ListProducts)
}
