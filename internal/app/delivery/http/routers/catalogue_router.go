package routers

import (
	"helpora-service/internal/app/services/core/catalogues"

	"github.com/go-chi/chi/v5"
)

// Catalogue routes are public: the registration form needs them before
// the user has a session.
func attachCatalogueRoutes(router chi.Router, catalogueController *catalogues.CatalogueController) {
	router.Get("/districts", catalogueController.GetDistricts)
	router.Get("/languages", catalogueController.GetLanguages)
	router.Get("/categories", catalogueController.GetCategories)
	router.Get("/categories/{category}", catalogueController.GetCategoryCatalogue)
}
