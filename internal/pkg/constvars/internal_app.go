package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_USER_KEY                 ContextKey = "user"
)

const (
	ResourceTransactions    = "transactions"
	ResourceGatewayAccounts = "gateway-accounts"
	ResourceTokens          = "tokens"
	ResourceProducts        = "products"
	ResourceUsers           = "users"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&display_size=%d"
)

const (
	SessionKeyPrefix = "selfservice:session:"
)
