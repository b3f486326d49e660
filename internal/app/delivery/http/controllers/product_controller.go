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

type ProductController struct {
	Log            *zap.Logger
	ProductUsecase contracts.ProductUsecase
}

var (
	productControllerInstance *ProductController
	onceProductController     sync.Once
)

func NewProductController(logger *zap.Logger, productUsecase contracts.ProductUsecase) *ProductController {
	onceProductController.Do(func() {
		productControllerInstance = &ProductController{
			Log:            logger,
			ProductUsecase: productUsecase,
		}
	})
	return productControllerInstance
}

func (ctrl *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
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

	products, err := ctrl.ProductUsecase.ListProducts(ctx, gatewayAccountID)
	if err != nil {
		ctrl.Log.Error("Failed to list payment links",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListProductsSuccessMessage, products)
}
