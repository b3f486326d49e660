package routers

import (
	"fmt"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/controllers"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/delivery/http/middlewares"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.Post("/login", userController.Login)
	router.Post("/logout", userController.Logout)
	router.With(middlewares.Authenticate).Get("/me", userController.GetCurrentUser)
	router.With(middlewares.Authenticate).Get(fmt.Sprintf("/services/{%s}", constvars.ParamServiceID), userController.ListServiceUsers)
}
