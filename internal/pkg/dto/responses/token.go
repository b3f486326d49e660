package responses

type Token struct {
	TokenLink   string `json:"token_link"`
	Description string `json:"description,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
	IssuedDate  string `json:"issued_date,omitempty"`
	LastUsed    string `json:"last_used,omitempty"`
	Revoked     string `json:"revoked,omitempty"`
}

type TokensResponse struct {
	Tokens []Token `json:"tokens"`
}

type CreateTokenResponse struct {
	Token string `json:"token"`
}
