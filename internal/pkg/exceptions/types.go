package exceptions

import (
	"fmt"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrDecodeResponse = func(err error, service string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevCannotDecodeResponse, service))
	}
	ErrCreateHTTPRequest = func(err error, service string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCreateHTTPRequest, service))
	}
	ErrSendHTTPRequest = func(err error, service string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevSendHTTPRequest, service))
	}
	ErrUpstreamStatus = func(statusCode int, service string) *CustomError {
		code := constvars.StatusBadGateway
		clientMessage := constvars.ErrClientUpstreamUnavailable
		if statusCode == constvars.StatusNotFound {
			code = constvars.StatusNotFound
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(nil, code, clientMessage, fmt.Sprintf(constvars.ErrDevUpstreamStatus, statusCode, service))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrNotAuthenticated = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevSessionTokenInvalid)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevSessionNotFound)
	}
	ErrUserNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthenticated, constvars.ErrDevUserNotFound)
	}
	ErrTransactionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientTransactionNotFound, fmt.Sprintf(constvars.ErrDevUpstreamStatus, constvars.StatusNotFound, constvars.ServiceLedger))
	}
	ErrGatewayAccountNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientGatewayAccountNotFound, fmt.Sprintf(constvars.ErrDevUpstreamStatus, constvars.StatusNotFound, constvars.ServiceConnector))
	}
	ErrRefundAmountOutOfRange = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusPreconditionFailed, constvars.ErrClientRefundAmountUnavailable, constvars.ErrDevRefundAmountOutOfRange)
	}
	ErrRefundNotAvailable = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusPreconditionFailed, constvars.ErrClientRefundNotAvailable, constvars.ErrDevRefundAmountOutOfRange)
	}
	ErrURLParamMissing = func(paramName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamMissing, paramName))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
)
