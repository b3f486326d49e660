package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TokenController struct {
	Log          *zap.Logger
	TokenUsecase contracts.TokenUsecase
}

var (
	tokenControllerInstance *TokenController
	onceTokenController     sync.Once
)

func NewTokenController(logger *zap.Logger, tokenUsecase contracts.TokenUsecase) *TokenController {
	onceTokenController.Do(func() {
		tokenControllerInstance = &TokenController{
			Log:          logger,
			TokenUsecase: tokenUsecase,
		}
	})
	return tokenControllerInstance
}

func (ctrl *TokenController) CreateToken(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	gatewayAccountID := chi.URLParam(r, constvars.ParamAccountID)
	if gatewayAccountID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamAccountID))
		return
	}

	request := new(requests.CreateTokenRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if user := currentUser(r); user != nil {
		request.CreatedBy = user.Email
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := ctrl.TokenUsecase.CreateToken(ctx, gatewayAccountID, request)
	if err != nil {
		ctrl.Log.Error("Failed to create API token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTokenSuccessMessage, token)
}

func (ctrl *TokenController) ListActiveTokens(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	gatewayAccountID := chi.URLParam(r, constvars.ParamAccountID)
	if gatewayAccountID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamAccountID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	tokens, err := ctrl.TokenUsecase.ListActiveTokens(ctx, gatewayAccountID)
	if err != nil {
		ctrl.Log.Error("Failed to list API tokens",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListTokensSuccessMessage, tokens)
}

func (ctrl *TokenController) RevokeToken(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	gatewayAccountID := chi.URLParam(r, constvars.ParamAccountID)
	if gatewayAccountID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamAccountID))
		return
	}

	request := new(requests.RevokeTokenRequest)
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

	if err := ctrl.TokenUsecase.RevokeToken(ctx, gatewayAccountID, request.TokenLink); err != nil {
		ctrl.Log.Error("Failed to revoke API token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RevokeTokenSuccessMessage, nil)
}
