package responses

// GatewayAccount is the connector's view of a merchant account.
type GatewayAccount struct {
	GatewayAccountID           string `json:"gateway_account_id"`
	ExternalID                 string `json:"external_id"`
	PaymentProvider            string `json:"payment_provider,omitempty"`
	Type                       string `json:"type,omitempty"`
	ServiceName                string `json:"service_name,omitempty"`
	Description                string `json:"description,omitempty"`
	AllowMoto                  bool   `json:"allow_moto,omitempty"`
	CorporateExemptionsEnabled bool   `json:"corporate_exemptions_enabled,omitempty"`
	RequiresThreeDS            bool   `json:"requires_3ds,omitempty"`
}

type CardType struct {
	ID              string `json:"id"`
	Brand           string `json:"brand"`
	Label           string `json:"label"`
	Type            string `json:"type,omitempty"`
	RequiresThreeDS bool   `json:"requires_3ds,omitempty"`
}

type CardTypesResponse struct {
	CardTypes []CardType `json:"card_types"`
}
