package catalogues

import (
	"context"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogueController struct {
	Log         *zap.Logger
	CatalogueUC contracts.CatalogueUsecase
}

func NewCatalogueController(logger *zap.Logger, catalogueUsecase contracts.CatalogueUsecase) *CatalogueController {
	return &CatalogueController{
		Log:         logger,
		CatalogueUC: catalogueUsecase,
	}
}

func (ctrl *CatalogueController) GetDistricts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogueGetSuccess, ctrl.CatalogueUC.GetDistricts(ctx))
}

func (ctrl *CatalogueController) GetLanguages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogueGetSuccess, ctrl.CatalogueUC.GetLanguages(ctx))
}

func (ctrl *CatalogueController) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogueGetSuccess, ctrl.CatalogueUC.GetCategories(ctx))
}

func (ctrl *CatalogueController) GetCategoryCatalogue(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	category := chi.URLParam(r, "category")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response, err := ctrl.CatalogueUC.GetCategoryCatalogue(ctx, category)
	if err != nil {
		ctrl.Log.Info("CatalogueController.GetCategoryCatalogue unknown category",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCategoryKey, category),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CatalogueGetSuccess, response)
}
