package constvars

// Query and URL parameter names accepted by the transaction endpoints.
const (
	ParamPage           = "page"
	ParamDisplaySize    = "display_size"
	ParamEmail          = "email"
	ParamReference      = "reference"
	ParamCardholderName = "cardholder_name"
	ParamLastDigits     = "last_digits_card_number"
	ParamFromDate       = "from_date"
	ParamToDate         = "to_date"
	ParamState          = "state"
	ParamTransactionID  = "transactionExternalId"
	ParamAccountID      = "gatewayAccountExternalId"
	ParamServiceID      = "serviceExternalId"
)
