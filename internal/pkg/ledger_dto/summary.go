package ledger_dto

type TransactionSummary struct {
	Payments  TransactionSummaryBucket `json:"payments"`
	Refunds   TransactionSummaryBucket `json:"refunds"`
	NetIncome int64                    `json:"net_income"`
}

type TransactionSummaryBucket struct {
	Count       int   `json:"count"`
	GrossAmount int64 `json:"gross_amount"`
}
