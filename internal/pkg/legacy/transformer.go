// Package legacy reshapes ledger transaction, event and summary payloads
// into the field layout the older connector API used to produce, so
// downstream consumers written against the connector schema keep working.
package legacy

import (
	"strings"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
)

// TransactionSummary is the connector-era shape of the transactions report.
type TransactionSummary struct {
	SuccessfulPayments SummaryBucket  `json:"successful_payments"`
	RefundedPayments   SummaryBucket  `json:"refunded_payments"`
	NetIncome          SummaryAmounts `json:"net_income"`
}

type SummaryBucket struct {
	Count        int   `json:"count"`
	TotalInPence int64 `json:"total_in_pence"`
}

type SummaryAmounts struct {
	TotalInPence int64 `json:"total_in_pence"`
}

// TransformTransaction returns a copy of tx with the connector-schema
// fields populated. refund_summary is always present on the result, and
// charge_id identifies the payment the row is about: the row itself for
// payments, the parent payment for refunds and disputes carrying
// payment context. Absent optional fields are skipped, never an error.
func TransformTransaction(tx ledger_dto.Transaction) ledger_dto.Transaction {
	out := tx

	if tx.RefundSummary != nil {
		summary := *tx.RefundSummary
		if summary.AmountRefunded != nil {
			refunded := *summary.AmountRefunded
			summary.AmountSubmitted = &refunded
		}
		out.RefundSummary = &summary
	} else {
		out.RefundSummary = &ledger_dto.RefundSummary{}
	}

	if tx.RefundedBy != "" {
		out.RefundSummary.UserExternalID = tx.RefundedBy
	}

	out.ChargeID = tx.TransactionID

	if isChildTransaction(tx.TransactionType) && tx.PaymentDetails != nil {
		out.ChargeID = tx.ParentTransactionID
		out.Reference = tx.PaymentDetails.Reference
		out.Description = tx.PaymentDetails.Description
		out.Email = tx.PaymentDetails.Email
		out.CardDetails = cloneCardDetails(tx.PaymentDetails.CardDetails)
	}

	return out
}

// TransformTransactionList applies TransformTransaction to every row,
// preserving order, totals and pagination links.
func TransformTransactionList(result ledger_dto.TransactionSearchResult) ledger_dto.TransactionSearchResult {
	out := result
	if result.Results != nil {
		out.Results = make([]ledger_dto.Transaction, len(result.Results))
		for i, tx := range result.Results {
			out.Results[i] = TransformTransaction(tx)
		}
	}
	return out
}

// TransformEvents derives the connector-era event fields: a lowercased
// type, an updated timestamp, and submitted_by when the raw event data
// names who performed the refund. Derived values always win over any
// identically named field in the upstream payload.
func TransformEvents(response ledger_dto.TransactionEventsResponse) ledger_dto.TransactionEventsResponse {
	out := response
	if response.Events != nil {
		out.Events = make([]ledger_dto.TransactionEvent, len(response.Events))
		for i, event := range response.Events {
			out.Events[i] = transformEvent(event)
		}
	}
	return out
}

func transformEvent(event ledger_dto.TransactionEvent) ledger_dto.TransactionEvent {
	out := event
	out.Type = strings.ToLower(event.ResourceType)
	out.Updated = event.Timestamp
	if refundedBy, ok := event.Data["refunded_by"].(string); ok {
		out.SubmittedBy = refundedBy
	} else {
		out.SubmittedBy = ""
	}
	return out
}

// TransformTransactionSummary renames the ledger report buckets to the
// connector-era names. A nil summary yields the zero value rather than
// a panic, matching the permissive contract of the other transforms.
func TransformTransactionSummary(summary *ledger_dto.TransactionSummary) TransactionSummary {
	if summary == nil {
		return TransactionSummary{}
	}
	return TransactionSummary{
		SuccessfulPayments: SummaryBucket{
			Count:        summary.Payments.Count,
			TotalInPence: summary.Payments.GrossAmount,
		},
		RefundedPayments: SummaryBucket{
			Count:        summary.Refunds.Count,
			TotalInPence: summary.Refunds.GrossAmount,
		},
		NetIncome: SummaryAmounts{
			TotalInPence: summary.NetIncome,
		},
	}
}

func isChildTransaction(transactionType string) bool {
	switch strings.ToLower(transactionType) {
	case "refund", "dispute":
		return true
	default:
		return false
	}
}

func cloneCardDetails(card *ledger_dto.CardDetails) *ledger_dto.CardDetails {
	if card == nil {
		return nil
	}
	out := *card
	if card.BillingAddress != nil {
		address := *card.BillingAddress
		out.BillingAddress = &address
	}
	return &out
}
