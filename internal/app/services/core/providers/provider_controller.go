package providers

import (
	"context"
	"helpora-service/internal/app/config"
	"helpora-service/internal/app/contracts"
	"helpora-service/internal/pkg/constvars"
	"helpora-service/internal/pkg/dto/requests"
	"helpora-service/internal/pkg/exceptions"
	"helpora-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProviderProfileController struct {
	Log            *zap.Logger
	ProviderUC     contracts.ProviderProfileUsecase
	InternalConfig *config.InternalConfig
}

func NewProviderProfileController(logger *zap.Logger, providerUsecase contracts.ProviderProfileUsecase, internalConfig *config.InternalConfig) *ProviderProfileController {
	return &ProviderProfileController{
		Log:            logger,
		ProviderUC:     providerUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *ProviderProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ProviderProfileController.SaveProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SaveProviderProfile)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeSaveProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 40*time.Second)
	defer cancel()

	response, created, err := ctrl.ProviderUC.SaveProfileBySession(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.Log.Error("ProviderProfileController.SaveProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProviderProfileController.SaveProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, response.ID),
		zap.Bool("created", created),
	)
	if created {
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ProfileCreatedSuccess, response)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedSuccess, response)
}

func (ctrl *ProviderProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ProviderProfileController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	withRemoteFallback := r.URL.Query().Get("remote") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ProviderUC.GetProfileBySession(ctx, sessionData, withRemoteFallback)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.Log.Error("ProviderProfileController.GetProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProviderProfileController.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, response)
}

func (ctrl *ProviderProfileController) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ProviderProfileController.DeleteProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.DeleteProviderProfile)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ProviderUC.DeleteProfileBySession(ctx, sessionData, request); err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.Log.Error("ProviderProfileController.DeleteProfile error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ProviderProfileController.DeleteProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileDeletedSuccess, nil)
}
