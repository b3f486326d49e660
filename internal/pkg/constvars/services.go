package constvars

// Upstream microservice names, used in logs and error messages.
const (
	ServiceLedger     = "ledger"
	ServiceConnector  = "connector"
	ServiceAdminusers = "adminusers"
	ServiceProducts   = "products"
	ServicePublicAuth = "publicauth"
)

// Upstream resource paths, appended to the per-service base URL from config.
const (
	LedgerTransactionPath        = "/v1/transaction"
	LedgerTransactionSummaryPath = "/v1/report/transactions-summary"

	ConnectorAccountPath = "/v1/api/accounts"

	AdminusersUserPath    = "/v1/api/users"
	AdminusersServicePath = "/v1/api/services"

	ProductsGatewayAccountPath = "/v1/api/gateway-account"

	PublicAuthTokenPath = "/v1/frontend/auth"
)
