package requests

type CreateRefundRequest struct {
	Amount                int64  `json:"amount" validate:"required,gt=0"`
	RefundAmountAvailable int64  `json:"refund_amount_available" validate:"gte=0"`
	UserExternalID        string `json:"user_external_id,omitempty"`
}
