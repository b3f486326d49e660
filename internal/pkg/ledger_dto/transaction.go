package ledger_dto

type Transaction struct {
	TransactionID          string                 `json:"transaction_id,omitempty"`
	ChargeID               string                 `json:"charge_id,omitempty"`
	ParentTransactionID    string                 `json:"parent_transaction_id,omitempty"`
	GatewayAccountID       string                 `json:"gateway_account_id,omitempty"`
	GatewayTransactionID   string                 `json:"gateway_transaction_id,omitempty"`
	TransactionType        string                 `json:"transaction_type,omitempty"`
	Amount                 int64                  `json:"amount"`
	TotalAmount            *int64                 `json:"total_amount,omitempty"`
	Fee                    *int64                 `json:"fee,omitempty"`
	NetAmount              *int64                 `json:"net_amount,omitempty"`
	CorporateCardSurcharge *int64                 `json:"corporate_card_surcharge,omitempty"`
	State                  *TransactionState      `json:"state,omitempty"`
	CreatedDate            string                 `json:"created_date,omitempty"`
	Reference              string                 `json:"reference,omitempty"`
	Description            string                 `json:"description,omitempty"`
	Email                  string                 `json:"email,omitempty"`
	Language               string                 `json:"language,omitempty"`
	ReturnURL              string                 `json:"return_url,omitempty"`
	PaymentProvider        string                 `json:"payment_provider,omitempty"`
	CardDetails            *CardDetails           `json:"card_details,omitempty"`
	RefundSummary          *RefundSummary         `json:"refund_summary,omitempty"`
	SettlementSummary      *SettlementSummary     `json:"settlement_summary,omitempty"`
	AuthorisationSummary   *AuthorisationSummary  `json:"authorisation_summary,omitempty"`
	Exemption              *Exemption             `json:"exemption,omitempty"`
	RefundedBy             string                 `json:"refunded_by,omitempty"`
	Disputed               bool                   `json:"disputed,omitempty"`
	DelayedCapture         bool                   `json:"delayed_capture,omitempty"`
	Moto                   bool                   `json:"moto,omitempty"`
	WalletType             string                 `json:"wallet_type,omitempty"`
	Metadata               map[string]interface{} `json:"metadata,omitempty"`
	PaymentDetails         *PaymentDetails        `json:"payment_details,omitempty"`
	EvidenceDueDate        string                 `json:"evidence_due_date,omitempty"`
	Reason                 string                 `json:"reason,omitempty"`
}

type TransactionState struct {
	Status   string `json:"status,omitempty"`
	Finished bool   `json:"finished,omitempty"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
}

type CardDetails struct {
	CardBrand             string          `json:"card_brand,omitempty"`
	CardType              string          `json:"card_type,omitempty"`
	CardholderName        string          `json:"cardholder_name,omitempty"`
	LastDigitsCardNumber  string          `json:"last_digits_card_number,omitempty"`
	FirstDigitsCardNumber string          `json:"first_digits_card_number,omitempty"`
	ExpiryDate            string          `json:"expiry_date,omitempty"`
	BillingAddress        *BillingAddress `json:"billing_address,omitempty"`
}

type BillingAddress struct {
	Line1    string `json:"line1,omitempty"`
	Line2    string `json:"line2,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
}

type RefundSummary struct {
	Status          string `json:"status,omitempty"`
	AmountAvailable *int64 `json:"amount_available,omitempty"`
	AmountSubmitted *int64 `json:"amount_submitted,omitempty"`
	AmountRefunded  *int64 `json:"amount_refunded,omitempty"`
	UserExternalID  string `json:"user_external_id,omitempty"`
}

type SettlementSummary struct {
	CaptureSubmitTime string `json:"capture_submit_time,omitempty"`
	CapturedDate      string `json:"captured_date,omitempty"`
	SettledDate       string `json:"settled_date,omitempty"`
}

type AuthorisationSummary struct {
	ThreeDSecure *ThreeDSecure `json:"three_d_secure,omitempty"`
}

type ThreeDSecure struct {
	Required bool   `json:"required"`
	Version  string `json:"version,omitempty"`
}

type Exemption struct {
	Requested bool              `json:"requested"`
	Type      string            `json:"type,omitempty"`
	Outcome   *ExemptionOutcome `json:"outcome,omitempty"`
}

type ExemptionOutcome struct {
	Result string `json:"result,omitempty"`
}

// PaymentDetails is the payment context ledger embeds on refund and
// dispute rows, duplicating fields from the parent payment.
type PaymentDetails struct {
	Reference   string       `json:"reference,omitempty"`
	Description string       `json:"description,omitempty"`
	Email       string       `json:"email,omitempty"`
	CardDetails *CardDetails `json:"card_details,omitempty"`
}
