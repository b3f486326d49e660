package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/pagination"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultDisplaySize = 100

type TransactionController struct {
	Log                *zap.Logger
	TransactionUsecase contracts.TransactionUsecase
}

var (
	transactionControllerInstance *TransactionController
	onceTransactionController     sync.Once
)

func NewTransactionController(logger *zap.Logger, transactionUsecase contracts.TransactionUsecase) *TransactionController {
	onceTransactionController.Do(func() {
		transactionControllerInstance = &TransactionController{
			Log:                logger,
			TransactionUsecase: transactionUsecase,
		}
	})
	return transactionControllerInstance
}

func (ctrl *TransactionController) ListTransactions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("Request ID missing from context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	gatewayAccountID := chi.URLParam(r, constvars.ParamAccountID)
	if gatewayAccountID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamAccountID))
		return
	}

	request := parseSearchRequest(r)
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("Search filters failed validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, err := ctrl.TransactionUsecase.ListTransactions(ctx, gatewayAccountID, request)
	if err != nil {
		ctrl.Log.Error("Failed to list transactions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	view.PaginationLinks = pagination.BuildLinks(view.Total, request.DisplaySize, request.Page, r.URL.Path)

	paginationMeta := utils.BuildPaginationResponse(view.Total, request.Page, request.DisplaySize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListTransactionsSuccessMessage, paginationMeta, view)
}

func (ctrl *TransactionController) GetTransactionDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	gatewayAccountID := chi.URLParam(r, constvars.ParamAccountID)
	transactionID := chi.URLParam(r, constvars.ParamTransactionID)
	if gatewayAccountID == "" || transactionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamTransactionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, err := ctrl.TransactionUsecase.GetTransactionDetail(ctx, gatewayAccountID, transactionID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch transaction detail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTransactionSuccessMessage, view)
}

func (ctrl *TransactionController) GetTransactionEvents(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	gatewayAccountID := chi.URLParam(r, constvars.ParamAccountID)
	transactionID := chi.URLParam(r, constvars.ParamTransactionID)
	if gatewayAccountID == "" || transactionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamTransactionID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	events, err := ctrl.TransactionUsecase.GetTransactionEvents(ctx, gatewayAccountID, transactionID)
	if err != nil {
		ctrl.Log.Error("Failed to fetch transaction events",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTransactionEventsSuccessMessage, events)
}

func (ctrl *TransactionController) GetTransactionSummary(w http.ResponseWriter, r *http.Request) {
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

	query := r.URL.Query()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	summary, err := ctrl.TransactionUsecase.GetTransactionSummary(ctx, gatewayAccountID, query.Get(constvars.ParamFromDate), query.Get(constvars.ParamToDate))
	if err != nil {
		ctrl.Log.Error("Failed to fetch transactions summary",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTransactionSummarySuccessMessage, summary)
}

func (ctrl *TransactionController) SubmitRefund(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	gatewayAccountID := chi.URLParam(r, constvars.ParamAccountID)
	transactionID := chi.URLParam(r, constvars.ParamTransactionID)
	if gatewayAccountID == "" || transactionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.ParamTransactionID))
		return
	}

	request := new(requests.CreateRefundRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse refund request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if user := currentUser(r); user != nil {
		request.UserExternalID = user.ExternalID
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.TransactionUsecase.SubmitRefund(ctx, gatewayAccountID, transactionID, request); err != nil {
		ctrl.Log.Error("Failed to submit refund",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTransactionIDKey, transactionID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Refund submitted",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.SubmitRefundSuccessMessage, nil)
}

// parseSearchRequest binds the list-page query parameters, applying the
// page and display size defaults.
func parseSearchRequest(r *http.Request) *requests.TransactionSearchRequest {
	query := r.URL.Query()

	request := &requests.TransactionSearchRequest{
		Page:                 1,
		DisplaySize:          defaultDisplaySize,
		Reference:            query.Get(constvars.ParamReference),
		Email:                query.Get(constvars.ParamEmail),
		CardholderName:       query.Get(constvars.ParamCardholderName),
		LastDigitsCardNumber: query.Get(constvars.ParamLastDigits),
		State:                query.Get(constvars.ParamState),
		FromDate:             query.Get(constvars.ParamFromDate),
		ToDate:               query.Get(constvars.ParamToDate),
	}

	if page, err := strconv.Atoi(query.Get(constvars.ParamPage)); err == nil && page > 0 {
		request.Page = page
	}
	if displaySize, err := strconv.Atoi(query.Get(constvars.ParamDisplaySize)); err == nil && displaySize > 0 {
		request.DisplaySize = displaySize
	}
	return request
}
