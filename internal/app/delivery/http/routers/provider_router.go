package routers

import (
	"helpora-service/internal/app/delivery/http/middlewares"
	"helpora-service/internal/app/services/core/providers"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *providers.ProviderProfileController) {
	router.With(middlewares.Authenticate).Get("/profile", providerController.GetProfile)
	router.With(middlewares.Authenticate).Put("/profile", providerController.SaveProfile)
	router.With(middlewares.Authenticate).Delete("/profile", providerController.DeleteProfile)
}
