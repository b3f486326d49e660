package legacy

import (
	"testing"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestTransformTransaction(t *testing.T) {
	t.Run("Payment charge_id defaults to its own transaction id", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID:   "tx-1",
			TransactionType: "PAYMENT",
		}

		out := TransformTransaction(tx)

		assert.Equal(t, "tx-1", out.ChargeID, "charge_id should equal the transaction's own id for payments")
	})

	t.Run("Refund with payment details takes the parent charge_id", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID:       "refund-1",
			ParentTransactionID: "payment-1",
			TransactionType:     "REFUND",
			PaymentDetails: &ledger_dto.PaymentDetails{
				Reference:   "ref-1",
				Description: "a payment",
				Email:       "payer@example.com",
				CardDetails: &ledger_dto.CardDetails{
					CardBrand:            "visa",
					CardholderName:       "T Payer",
					LastDigitsCardNumber: "4242",
				},
			},
		}

		out := TransformTransaction(tx)

		assert.Equal(t, "payment-1", out.ChargeID, "charge_id should be the parent transaction id")
		assert.Equal(t, "ref-1", out.Reference, "reference should be hoisted from payment_details")
		assert.Equal(t, "a payment", out.Description, "description should be hoisted from payment_details")
		assert.Equal(t, "payer@example.com", out.Email, "email should be hoisted from payment_details")
		if assert.NotNil(t, out.CardDetails) {
			assert.Equal(t, "4242", out.CardDetails.LastDigitsCardNumber, "card details should be hoisted from payment_details")
		}
	})

	t.Run("Dispute with payment details takes the parent charge_id", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID:       "dispute-1",
			ParentTransactionID: "payment-2",
			TransactionType:     "dispute",
			PaymentDetails:      &ledger_dto.PaymentDetails{Reference: "ref-2"},
		}

		out := TransformTransaction(tx)

		assert.Equal(t, "payment-2", out.ChargeID, "transaction_type matching is case-insensitive")
	})

	t.Run("Refund without payment details keeps its own id as charge_id", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID:       "refund-2",
			ParentTransactionID: "payment-3",
			TransactionType:     "REFUND",
		}

		out := TransformTransaction(tx)

		assert.Equal(t, "refund-2", out.ChargeID)
	})

	t.Run("Missing refund_summary is defaulted to an empty value", func(t *testing.T) {
		tx := ledger_dto.Transaction{TransactionID: "tx-2", TransactionType: "PAYMENT"}

		out := TransformTransaction(tx)

		assert.NotNil(t, out.RefundSummary, "refund_summary must always be present on the legacy shape")
	})

	t.Run("amount_refunded is copied to amount_submitted", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-3",
			RefundSummary: &ledger_dto.RefundSummary{
				Status:         "available",
				AmountRefunded: int64Ptr(150),
			},
		}

		out := TransformTransaction(tx)

		if assert.NotNil(t, out.RefundSummary.AmountSubmitted) {
			assert.Equal(t, int64(150), *out.RefundSummary.AmountSubmitted)
		}
	})

	t.Run("Top-level refunded_by is copied into refund_summary", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-4",
			RefundedBy:    "user-123",
		}

		out := TransformTransaction(tx)

		assert.Equal(t, "user-123", out.RefundSummary.UserExternalID)
	})

	t.Run("Transform is idempotent", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID:       "refund-3",
			ParentTransactionID: "payment-4",
			TransactionType:     "REFUND",
			RefundedBy:          "user-456",
			RefundSummary: &ledger_dto.RefundSummary{
				Status:         "full",
				AmountRefunded: int64Ptr(999),
			},
			PaymentDetails: &ledger_dto.PaymentDetails{Reference: "ref-3"},
		}

		once := TransformTransaction(tx)
		twice := TransformTransaction(once)

		assert.Equal(t, once, twice, "applying the transform twice must not change the result")
	})

	t.Run("Input transaction is not mutated", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-5",
			RefundSummary: &ledger_dto.RefundSummary{AmountRefunded: int64Ptr(10)},
		}

		TransformTransaction(tx)

		assert.Nil(t, tx.RefundSummary.AmountSubmitted, "the caller's refund_summary must be left untouched")
		assert.Empty(t, tx.ChargeID)
	})
}

func TestTransformTransactionList(t *testing.T) {
	result := ledger_dto.TransactionSearchResult{
		Total: 2,
		Count: 2,
		Page:  1,
		Results: []ledger_dto.Transaction{
			{TransactionID: "tx-1", TransactionType: "PAYMENT"},
			{
				TransactionID:       "refund-1",
				ParentTransactionID: "tx-1",
				TransactionType:     "REFUND",
				PaymentDetails:      &ledger_dto.PaymentDetails{Reference: "ref-1"},
			},
		},
		Links: &ledger_dto.SearchLinks{Self: &ledger_dto.Link{Href: "/page/1"}},
	}

	out := TransformTransactionList(result)

	assert.Equal(t, 2, out.Total, "totals pass through unchanged")
	assert.Equal(t, 1, out.Page, "page passes through unchanged")
	assert.Equal(t, "/page/1", out.Links.Self.Href, "links pass through unchanged")
	assert.Equal(t, "tx-1", out.Results[0].ChargeID)
	assert.Equal(t, "tx-1", out.Results[1].ChargeID, "refund rows point at the parent payment")
	assert.Equal(t, "ref-1", out.Results[1].Reference)
}

func TestTransformEvents(t *testing.T) {
	t.Run("Resource type is lowercased into type and timestamp copied to updated", func(t *testing.T) {
		response := ledger_dto.TransactionEventsResponse{
			TransactionID: "tx-1",
			Events: []ledger_dto.TransactionEvent{
				{ResourceType: "PAYMENT", Timestamp: "2024-05-01T12:00:00.000Z"},
			},
		}

		out := TransformEvents(response)

		assert.Equal(t, "payment", out.Events[0].Type)
		assert.Equal(t, "2024-05-01T12:00:00.000Z", out.Events[0].Updated)
	})

	t.Run("submitted_by is set only when the event data carries refunded_by", func(t *testing.T) {
		response := ledger_dto.TransactionEventsResponse{
			Events: []ledger_dto.TransactionEvent{
				{ResourceType: "REFUND", Data: map[string]interface{}{"refunded_by": "user-1"}},
				{ResourceType: "REFUND", Data: map[string]interface{}{"amount": float64(100)}},
				{ResourceType: "PAYMENT"},
			},
		}

		out := TransformEvents(response)

		assert.Equal(t, "user-1", out.Events[0].SubmittedBy)
		assert.Empty(t, out.Events[1].SubmittedBy)
		assert.Empty(t, out.Events[2].SubmittedBy)
	})

	t.Run("Derived fields win over upstream homonyms", func(t *testing.T) {
		response := ledger_dto.TransactionEventsResponse{
			Events: []ledger_dto.TransactionEvent{
				{
					ResourceType: "PAYMENT",
					Timestamp:    "2024-05-01T12:00:00.000Z",
					Type:         "stale",
					Updated:      "stale",
					SubmittedBy:  "stale",
				},
			},
		}

		out := TransformEvents(response)

		assert.Equal(t, "payment", out.Events[0].Type)
		assert.Equal(t, "2024-05-01T12:00:00.000Z", out.Events[0].Updated)
		assert.Empty(t, out.Events[0].SubmittedBy)
	})
}

func TestTransformTransactionSummary(t *testing.T) {
	t.Run("Buckets are renamed to the connector shape", func(t *testing.T) {
		summary := &ledger_dto.TransactionSummary{
			Payments:  ledger_dto.TransactionSummaryBucket{Count: 10, GrossAmount: 12001},
			Refunds:   ledger_dto.TransactionSummaryBucket{Count: 2, GrossAmount: 2302},
			NetIncome: 9699,
		}

		out := TransformTransactionSummary(summary)

		assert.Equal(t, 10, out.SuccessfulPayments.Count)
		assert.Equal(t, int64(12001), out.SuccessfulPayments.TotalInPence)
		assert.Equal(t, 2, out.RefundedPayments.Count)
		assert.Equal(t, int64(2302), out.RefundedPayments.TotalInPence)
		assert.Equal(t, int64(9699), out.NetIncome.TotalInPence)
	})

	t.Run("Nil summary yields the zero value", func(t *testing.T) {
		out := TransformTransactionSummary(nil)

		assert.Equal(t, TransactionSummary{}, out)
	})
}
