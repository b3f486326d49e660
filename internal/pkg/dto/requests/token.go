package requests

type CreateTokenRequest struct {
	Description      string `json:"description" validate:"required,max=255"`
	GatewayAccountID string `json:"account_id,omitempty"`
	CreatedBy        string `json:"created_by,omitempty"`
	TokenType        string `json:"token_type,omitempty" validate:"omitempty,oneof=CARD DIRECT_DEBIT"`
}

type RevokeTokenRequest struct {
	TokenLink string `json:"token_link" validate:"required"`
}
