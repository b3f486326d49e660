package views

import (
	"testing"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaymentViewRedaction(t *testing.T) {
	t.Run("Redacted fields display as Data unavailable", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-1",
			Reference:     "<DELETED>",
			Description:   "<DELETED>",
			Email:         "<DELETED>",
			CardDetails:   &ledger_dto.CardDetails{CardholderName: "<DELETED>", LastDigitsCardNumber: "4242"},
		}

		view := BuildPaymentView(tx, nil, nil, false)

		assert.Equal(t, DataUnavailable, view.Reference)
		assert.Equal(t, DataUnavailable, view.Description)
		assert.Equal(t, DataUnavailable, view.Email)
		assert.Equal(t, DataUnavailable, view.CardDetails.CardholderName)
		assert.Equal(t, "4242", view.CardDetails.LastDigitsCardNumber, "non-redacted card fields pass through")
	})

	t.Run("Ordinary values pass through unchanged", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-2",
			Reference:     "ref-1",
			Email:         "payer@example.com",
		}

		view := BuildPaymentView(tx, nil, nil, false)

		assert.Equal(t, "ref-1", view.Reference)
		assert.Equal(t, "payer@example.com", view.Email)
	})
}

func TestBuildPaymentViewRefundability(t *testing.T) {
	testCases := []struct {
		status               string
		expectedDueToDispute bool
		expectedRefundable   bool
	}{
		{"unavailable", true, false},
		{"available", false, true},
		{"error", false, true},
		{"full", false, false},
		{"pending", false, false},
	}

	for _, tc := range testCases {
		t.Run("disputed payment with refund status "+tc.status, func(t *testing.T) {
			tx := ledger_dto.Transaction{
				TransactionID: "tx-1",
				Disputed:      true,
				RefundSummary: &ledger_dto.RefundSummary{Status: tc.status},
			}

			view := BuildPaymentView(tx, nil, nil, false)

			assert.Equal(t, tc.expectedDueToDispute, view.RefundUnavailableDueToDispute)
			assert.Equal(t, tc.expectedRefundable, view.Refundable)
		})
	}

	t.Run("unavailable without a dispute is not attributed to one", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-2",
			RefundSummary: &ledger_dto.RefundSummary{Status: "unavailable"},
		}

		view := BuildPaymentView(tx, nil, nil, false)

		assert.False(t, view.RefundUnavailableDueToDispute)
		assert.False(t, view.Refundable)
	})
}

func TestBuildPaymentViewDisputeData(t *testing.T) {
	tx := ledger_dto.Transaction{TransactionID: "tx-1", Disputed: true}
	dispute := &ledger_dto.Transaction{
		TransactionID:   "dispute-1",
		TransactionType: "DISPUTE",
		Amount:          1000,
		Reason:          "fraudulent",
		State:           &ledger_dto.TransactionState{Status: "under_review"},
	}

	view := BuildPaymentView(tx, nil, dispute, false)

	if assert.NotNil(t, view.Dispute) {
		assert.Equal(t, "£10.00", view.Dispute.AmountFriendly)
		assert.Equal(t, "under_review", view.Dispute.Status)
		assert.Equal(t, "Under review", view.Dispute.StatusFriendly)
		assert.Equal(t, "fraudulent", view.Dispute.Reason)
	}
}

func TestBuildPaymentViewThreeDSecure(t *testing.T) {
	t.Run("Omitted without an authorisation summary", func(t *testing.T) {
		view := BuildPaymentView(ledger_dto.Transaction{TransactionID: "tx-1"}, nil, nil, false)

		assert.Empty(t, view.ThreeDSecure)
	})

	t.Run("Required", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-2",
			AuthorisationSummary: &ledger_dto.AuthorisationSummary{
				ThreeDSecure: &ledger_dto.ThreeDSecure{Required: true},
			},
		}

		view := BuildPaymentView(tx, nil, nil, false)

		assert.Equal(t, ThreeDSecureRequired, view.ThreeDSecure)
	})

	t.Run("Not required", func(t *testing.T) {
		tx := ledger_dto.Transaction{
			TransactionID: "tx-3",
			AuthorisationSummary: &ledger_dto.AuthorisationSummary{
				ThreeDSecure: &ledger_dto.ThreeDSecure{Required: false},
			},
		}

		view := BuildPaymentView(tx, nil, nil, false)

		assert.Equal(t, ThreeDSecureNotRequired, view.ThreeDSecure)
	})
}

func TestBuildPaymentViewCorporateExemption(t *testing.T) {
	build := func(exemption *ledger_dto.Exemption, enabled bool) PaymentView {
		return BuildPaymentView(ledger_dto.Transaction{TransactionID: "tx-1", Exemption: exemption}, nil, nil, enabled)
	}

	t.Run("Omitted when the transaction has no exemption", func(t *testing.T) {
		assert.Empty(t, build(nil, true).CorporateExemptionRequested)
	})

	t.Run("Omitted when not requested and the account flag is off", func(t *testing.T) {
		assert.Empty(t, build(&ledger_dto.Exemption{Requested: false}, false).CorporateExemptionRequested)
	})

	t.Run("Not requested when the account flag is on", func(t *testing.T) {
		assert.Equal(t, ExemptionNotRequested, build(&ledger_dto.Exemption{Requested: false}, true).CorporateExemptionRequested)
	})

	t.Run("Corporate outcomes map to their labels", func(t *testing.T) {
		outcomes := map[string]string{
			"honoured":     "Honoured",
			"rejected":     "Rejected",
			"out of scope": "Out of scope",
		}
		for result, label := range outcomes {
			exemption := &ledger_dto.Exemption{
				Requested: true,
				Type:      "corporate",
				Outcome:   &ledger_dto.ExemptionOutcome{Result: result},
			}
			assert.Equal(t, label, build(exemption, false).CorporateExemptionRequested, result)
		}
	})

	t.Run("Corporate without an outcome is omitted", func(t *testing.T) {
		exemption := &ledger_dto.Exemption{Requested: true, Type: "corporate"}
		assert.Empty(t, build(exemption, true).CorporateExemptionRequested)
	})

	t.Run("Non-corporate requested exemption follows the account flag", func(t *testing.T) {
		exemption := &ledger_dto.Exemption{Requested: true, Type: "low_value"}

		assert.Empty(t, build(exemption, false).CorporateExemptionRequested)
		assert.Equal(t, ExemptionNotRequested, build(exemption, true).CorporateExemptionRequested)
	})

	t.Run("Unknown corporate outcome produces no label", func(t *testing.T) {
		exemption := &ledger_dto.Exemption{
			Requested: true,
			Type:      "corporate",
			Outcome:   &ledger_dto.ExemptionOutcome{Result: "deferred"},
		}
		assert.Empty(t, build(exemption, true).CorporateExemptionRequested)
	})
}

func TestBuildPaymentViewAmounts(t *testing.T) {
	fee := int64(35)
	net := int64(1965)
	tx := ledger_dto.Transaction{
		TransactionID: "tx-1",
		Amount:        2000,
		Fee:           &fee,
		NetAmount:     &net,
		State:         &ledger_dto.TransactionState{Status: "success", Finished: true},
	}

	view := BuildPaymentView(tx, nil, nil, false)

	assert.Equal(t, "£20.00", view.AmountFriendly)
	assert.Equal(t, "£0.35", view.FeeFriendly)
	assert.Equal(t, "£19.65", view.NetFriendly)
	assert.Equal(t, "Success", view.StateFriendly)
}
