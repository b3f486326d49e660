package responses

type Product struct {
	ExternalID       string `json:"external_id"`
	GatewayAccountID string `json:"gateway_account_id,omitempty"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Price            int64  `json:"price,omitempty"`
	PriceFriendly    string `json:"price_friendly,omitempty"`
	Type             string `json:"type,omitempty"`
	PayLink          string `json:"pay_link,omitempty"`
}
