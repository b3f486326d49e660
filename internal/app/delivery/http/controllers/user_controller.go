package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/config"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log              *zap.Logger
	SessionUsecase   contracts.SessionUsecase
	AdminusersClient contracts.AdminusersClient
	SessionConfig    config.Session
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(
	logger *zap.Logger,
	sessionUsecase contracts.SessionUsecase,
	adminusersClient contracts.AdminusersClient,
	sessionConfig config.Session,
) *UserController {
	onceUserController.Do(func() {
		userControllerInstance = &UserController{
			Log:              logger,
			SessionUsecase:   sessionUsecase,
			AdminusersClient: adminusersClient,
			SessionConfig:    sessionConfig,
		}
	})
	return userControllerInstance
}

// GetCurrentUser returns the user the session middleware resolved.
func (ctrl *UserController) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r)
	if user == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCurrentUserSuccessMessage, user)
}

func (ctrl *UserController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.LoginRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := ctrl.AdminusersClient.FindUserByExternalID(ctx, request.UserExternalID)
	if err != nil {
		ctrl.Log.Error("Failed to resolve user at login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, request.UserExternalID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	cookieValue, err := ctrl.SessionUsecase.CreateSession(ctx, user)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.SessionConfig.CookieName,
		Value:    cookieValue,
		Path:     "/",
		MaxAge:   ctrl.SessionConfig.TTLInMinutes * 60,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, user)
}

// ListServiceUsers returns the team members of a service.
func (ctrl *UserController) ListServiceUsers(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	serviceExternalID := chi.URLParam(r, constvars.ParamServiceID)
	if serviceExternalID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamServiceID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := ctrl.AdminusersClient.GetServiceUsers(ctx, serviceExternalID)
	if err != nil {
		ctrl.Log.Error("Failed to list service users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListServiceUsersSuccessMessage, users)
}

func (ctrl *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(ctrl.SessionConfig.CookieName)
	if err == nil && cookie.Value != "" {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := ctrl.SessionUsecase.DestroySession(ctx, cookie.Value); err != nil {
			ctrl.Log.Warn("Failed to destroy session at logout", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ctrl.SessionConfig.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
