package constvars

const (
	LoggingRequestIDKey        = "request_id"
	LoggingMethodKey           = "method"
	LoggingEndpointKey         = "endpoint"
	LoggingRemoteAddrKey       = "remote_addr"
	LoggingUserAgentKey        = "user_agent"
	LoggingQueryKey            = "query"
	LoggingDurationKey         = "duration"
	LoggingStatusCodeKey       = "status_code"
	LoggingSuccessKey          = "success"
	LoggingErrorTypeKey        = "error_type"
	LoggingUpstreamServiceKey  = "upstream_service"
	LoggingGatewayAccountIDKey = "gateway_account_id"
	LoggingTransactionIDKey    = "transaction_id"
	LoggingUserIDKey           = "user_external_id"
	LoggingAttemptKey          = "attempt"
)
