package constvars

// Messages shown to the browser/API caller.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
	ErrClientNotAuthenticated              = "You need to sign in to access this resource"
	ErrClientNotAuthorized                 = "You do not have permission to access this resource"
	ErrClientTransactionNotFound           = "Transaction could not be found"
	ErrClientGatewayAccountNotFound        = "Gateway account could not be found"
	ErrClientRefundAmountUnavailable       = "The refund amount is greater than the amount available"
	ErrClientRefundNotAvailable            = "This payment cannot be refunded"
	ErrClientUpstreamUnavailable           = "A backing service is currently unavailable, please try again"
)

// Messages kept for operators, never sent to the client in production.
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "Failed to marshal JSON"
	ErrDevCannotDecodeResponse   = "Failed to decode %s response body"
	ErrDevCreateHTTPRequest      = "Failed to create HTTP request to %s"
	ErrDevSendHTTPRequest        = "Failed to send HTTP request to %s"
	ErrDevUpstreamStatus         = "Unexpected status %d from %s"
	ErrDevServerDeadlineExceeded = "Deadline exceeded while waiting for upstream"
	ErrDevMissingRequestID       = "Request ID missing from request context"
	ErrDevSessionTokenInvalid    = "Session token could not be parsed or verified"
	ErrDevSessionNotFound        = "No session found in store for the presented token"
	ErrDevUserNotFound           = "User does not exist in adminusers"
	ErrDevRefundAmountOutOfRange = "Requested refund amount is outside the available range"
	ErrDevURLParamMissing        = "Required URL parameter %s is missing"
	ErrDevRedisSet               = "Failed to write key to redis"
	ErrDevRedisGet               = "Failed to read key %s from redis"
	ErrDevRedisDelete            = "Failed to delete key from redis"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"numeric":  "must be a number",
	"datetime": "must be a valid timestamp",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}
