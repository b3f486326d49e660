package ledger_dto

// Transaction type discriminator values as ledger returns them.
const (
	TransactionTypePayment = "PAYMENT"
	TransactionTypeRefund  = "REFUND"
	TransactionTypeDispute = "DISPUTE"
)

// RefundSummaryStatus is the closed set of refund availability states.
type RefundSummaryStatus string

const (
	RefundStatusAvailable   RefundSummaryStatus = "available"
	RefundStatusUnavailable RefundSummaryStatus = "unavailable"
	RefundStatusFull        RefundSummaryStatus = "full"
	RefundStatusPending     RefundSummaryStatus = "pending"
	RefundStatusError       RefundSummaryStatus = "error"
)

// ExemptionResult is the closed set of card-scheme exemption outcomes.
type ExemptionResult string

const (
	ExemptionResultHonoured   ExemptionResult = "honoured"
	ExemptionResultRejected   ExemptionResult = "rejected"
	ExemptionResultOutOfScope ExemptionResult = "out of scope"
)

// ExemptionTypeCorporate marks exemptions requested under the corporate
// card programme, displayed regardless of the account feature flag.
const ExemptionTypeCorporate = "corporate"

// DisputeStatusWon is the only dispute state where the disputed amount
// comes back to the merchant.
const DisputeStatusWon = "won"

// RedactedValue is the sentinel ledger substitutes for purged PII fields.
const RedactedValue = "<DELETED>"
