package constvars

const (
	ListTransactionsSuccessMessage      = "Transactions fetched successfully"
	GetTransactionSuccessMessage        = "Transaction fetched successfully"
	GetTransactionEventsSuccessMessage  = "Transaction events fetched successfully"
	GetTransactionSummarySuccessMessage = "Transactions summary fetched successfully"
	SubmitRefundSuccessMessage          = "Refund submitted successfully"

	GetGatewayAccountSuccessMessage = "Gateway account fetched successfully"
	GetCardTypesSuccessMessage      = "Card types fetched successfully"

	CreateTokenSuccessMessage = "API token created successfully"
	ListTokensSuccessMessage  = "API tokens fetched successfully"
	RevokeTokenSuccessMessage = "API token revoked successfully"

	ListProductsSuccessMessage = "Payment links fetched successfully"

	GetCurrentUserSuccessMessage   = "User fetched successfully"
	ListServiceUsersSuccessMessage = "Service users fetched successfully"
	LoginSuccessMessage            = "Logged in successfully"
	LogoutSuccessMessage           = "Logged out successfully"
)
