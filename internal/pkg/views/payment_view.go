// Package views builds the presentation models served to the portal
// pages from raw ledger transactions, their event history and dispute
// context. Builders are pure and never fail on absent optional data:
// a missing field is simply left off the view.
package views

import (
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/currency"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
)

type PaymentView struct {
	TransactionID    string                       `json:"transaction_id"`
	ChargeID         string                       `json:"charge_id,omitempty"`
	GatewayAccountID string                       `json:"gateway_account_id,omitempty"`
	CreatedDate      string                       `json:"created_date,omitempty"`
	Amount           int64                        `json:"amount"`
	AmountFriendly   string                       `json:"amount_friendly"`
	FeeFriendly      string                       `json:"fee_friendly,omitempty"`
	NetFriendly      string                       `json:"net_amount_friendly,omitempty"`
	State            *ledger_dto.TransactionState `json:"state,omitempty"`
	StateFriendly    string                       `json:"state_friendly,omitempty"`
	Reference        string                       `json:"reference,omitempty"`
	Description      string                       `json:"description,omitempty"`
	Email            string                       `json:"email,omitempty"`
	CardDetails      *ledger_dto.CardDetails      `json:"card_details,omitempty"`
	WalletType       string                       `json:"wallet_type,omitempty"`
	DelayedCapture   bool                         `json:"delayed_capture,omitempty"`
	Refundable       bool                         `json:"refundable"`

	RefundUnavailableDueToDispute bool `json:"refund_unavailable_due_to_dispute"`

	ThreeDSecure                string `json:"three_d_secure,omitempty"`
	CorporateExemptionRequested string `json:"corporate_exemption_requested,omitempty"`

	Dispute *DisputeView                  `json:"dispute,omitempty"`
	Events  []ledger_dto.TransactionEvent `json:"events,omitempty"`
}

type DisputeView struct {
	Amount          int64  `json:"amount"`
	AmountFriendly  string `json:"amount_friendly"`
	Status          string `json:"status,omitempty"`
	StatusFriendly  string `json:"status_friendly,omitempty"`
	Reason          string `json:"reason,omitempty"`
	EvidenceDueDate string `json:"evidence_due_date,omitempty"`
}

// BuildPaymentView converts a payment transaction plus its event
// history and optional dispute context into the detail-page model.
// corporateExemptionsEnabled is the account-level feature flag that
// widens when the exemption field is shown.
func BuildPaymentView(tx ledger_dto.Transaction, events []ledger_dto.TransactionEvent, disputeData *ledger_dto.Transaction, corporateExemptionsEnabled bool) PaymentView {
	view := PaymentView{
		TransactionID:    tx.TransactionID,
		ChargeID:         tx.ChargeID,
		GatewayAccountID: tx.GatewayAccountID,
		CreatedDate:      tx.CreatedDate,
		Amount:           tx.Amount,
		AmountFriendly:   currency.PoundsPence(tx.Amount),
		State:            tx.State,
		Reference:        displayValue(tx.Reference),
		Description:      displayValue(tx.Description),
		Email:            displayValue(tx.Email),
		WalletType:       tx.WalletType,
		DelayedCapture:   tx.DelayedCapture,
		Events:           events,
	}

	if tx.State != nil {
		view.StateFriendly = StatusLabel(tx.State.Status)
	}
	if tx.Fee != nil {
		view.FeeFriendly = currency.PoundsPence(*tx.Fee)
	}
	if tx.NetAmount != nil {
		view.NetFriendly = currency.PoundsPence(*tx.NetAmount)
	}

	if tx.CardDetails != nil {
		card := *tx.CardDetails
		card.CardholderName = displayValue(card.CardholderName)
		view.CardDetails = &card
	}

	view.Refundable, view.RefundUnavailableDueToDispute = refundability(tx)
	view.ThreeDSecure = threeDSecureLabel(tx.AuthorisationSummary)
	view.CorporateExemptionRequested = corporateExemptionLabel(tx.Exemption, corporateExemptionsEnabled)

	if disputeData != nil {
		dispute := &DisputeView{
			Amount:          disputeData.Amount,
			AmountFriendly:  currency.PoundsPence(disputeData.Amount),
			Reason:          disputeData.Reason,
			EvidenceDueDate: disputeData.EvidenceDueDate,
		}
		if disputeData.State != nil {
			dispute.Status = disputeData.State.Status
			dispute.StatusFriendly = StatusLabel(disputeData.State.Status)
		}
		view.Dispute = dispute
	}

	return view
}

// refundability maps the refund summary status onto the pair of display
// flags. A disputed payment whose refunds are unavailable is the one
// case attributed to the dispute.
func refundability(tx ledger_dto.Transaction) (refundable, dueToDispute bool) {
	if tx.RefundSummary == nil {
		return false, false
	}
	switch ledger_dto.RefundSummaryStatus(tx.RefundSummary.Status) {
	case ledger_dto.RefundStatusAvailable, ledger_dto.RefundStatusError:
		return true, false
	case ledger_dto.RefundStatusUnavailable:
		return false, tx.Disputed
	case ledger_dto.RefundStatusFull, ledger_dto.RefundStatusPending:
		return false, false
	default:
		return false, false
	}
}

func threeDSecureLabel(summary *ledger_dto.AuthorisationSummary) string {
	if summary == nil || summary.ThreeDSecure == nil {
		return ""
	}
	if summary.ThreeDSecure.Required {
		return ThreeDSecureRequired
	}
	return ThreeDSecureNotRequired
}

// corporateExemptionLabel implements the display matrix over
// (requested, type, outcome, account flag). An empty return means the
// field is left off the view.
func corporateExemptionLabel(exemption *ledger_dto.Exemption, corporateExemptionsEnabled bool) string {
	if exemption == nil {
		return ""
	}

	if !exemption.Requested {
		if corporateExemptionsEnabled {
			return ExemptionNotRequested
		}
		return ""
	}

	if exemption.Type == ledger_dto.ExemptionTypeCorporate {
		if exemption.Outcome == nil {
			return ""
		}
		label, ok := ExemptionOutcomeLabel(ledger_dto.ExemptionResult(exemption.Outcome.Result))
		if !ok {
			return ""
		}
		return label
	}

	if corporateExemptionsEnabled {
		return ExemptionNotRequested
	}
	return ""
}
