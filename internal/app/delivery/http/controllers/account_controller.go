package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AccountController struct {
	Log            *zap.Logger
	AccountUsecase contracts.AccountUsecase
}

var (
	accountControllerInstance *AccountController
	onceAccountController     sync.Once
)

func NewAccountController(logger *zap.Logger, accountUsecase contracts.AccountUsecase) *AccountController {
	onceAccountController.Do(func() {
		accountControllerInstance = &AccountController{
			Log:            logger,
			AccountUsecase: accountUsecase,
		}
	})
	return accountControllerInstance
}

func (ctrl *AccountController) GetGatewayAccount(w http.ResponseWriter, r *http.Request) {
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

	account, err := ctrl.AccountUsecase.GetGatewayAccount(ctx, gatewayAccountID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch gateway account",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetGatewayAccountSuccessMessage, account)
}

func (ctrl *AccountController) GetAcceptedCardTypes(w http.ResponseWriter, r *http.Request) {
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

	cardTypes, err := ctrl.AccountUsecase.GetAcceptedCardTypes(ctx, gatewayAccountID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch accepted card types",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCardTypesSuccessMessage, cardTypes)
}
