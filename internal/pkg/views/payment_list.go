package views

import (
	"strings"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/currency"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/pagination"
)

type TransactionListView struct {
	Total                    int                     `json:"total"`
	Count                    int                     `json:"count"`
	Page                     int                     `json:"page"`
	GatewayAccountExternalID string                  `json:"gateway_account_external_id,omitempty"`
	Filters                  map[string]string       `json:"filters,omitempty"`
	Results                  []TransactionRowView    `json:"results"`
	Links                    *ledger_dto.SearchLinks `json:"_links,omitempty"`
	PaginationLinks          []pagination.Link       `json:"pagination_links,omitempty"`
}

type TransactionRowView struct {
	TransactionID        string                       `json:"transaction_id"`
	ChargeID             string                       `json:"charge_id,omitempty"`
	TransactionType      string                       `json:"transaction_type,omitempty"`
	Amount               int64                        `json:"amount"`
	AmountFriendly       string                       `json:"amount_friendly"`
	State                *ledger_dto.TransactionState `json:"state,omitempty"`
	StateFriendly        string                       `json:"state_friendly,omitempty"`
	Reference            string                       `json:"reference,omitempty"`
	Description          string                       `json:"description,omitempty"`
	Email                string                       `json:"email,omitempty"`
	CardholderName       string                       `json:"cardholder_name,omitempty"`
	LastDigitsCardNumber string                       `json:"last_digits_card_number,omitempty"`
	CardBrand            string                       `json:"card_brand,omitempty"`
	CardBrandLabel       string                       `json:"card_brand_label,omitempty"`
	CreatedDate          string                       `json:"created_date,omitempty"`
}

// BuildPaymentList formats a transaction search result for the list
// page. Each row gets a display amount, disputes rendered as debits
// unless won, and a card brand label from the account's accepted card
// types. Pagination metadata passes through from the search result.
func BuildPaymentList(result ledger_dto.TransactionSearchResult, cardBrandLabels map[string]string, gatewayAccountExternalID string, filters map[string]string) TransactionListView {
	view := TransactionListView{
		Total:                    result.Total,
		Count:                    result.Count,
		Page:                     result.Page,
		GatewayAccountExternalID: gatewayAccountExternalID,
		Filters:                  filters,
		Results:                  make([]TransactionRowView, len(result.Results)),
		Links:                    result.Links,
	}

	for i, tx := range result.Results {
		view.Results[i] = buildRow(tx, cardBrandLabels)
	}
	return view
}

func buildRow(tx ledger_dto.Transaction, cardBrandLabels map[string]string) TransactionRowView {
	row := TransactionRowView{
		TransactionID:   tx.TransactionID,
		ChargeID:        tx.ChargeID,
		TransactionType: tx.TransactionType,
		Amount:          tx.Amount,
		AmountFriendly:  rowAmount(tx),
		State:           tx.State,
		Reference:       displayValue(tx.Reference),
		Description:     displayValue(tx.Description),
		Email:           displayValue(tx.Email),
		CreatedDate:     tx.CreatedDate,
	}

	if tx.State != nil {
		row.StateFriendly = StatusLabel(tx.State.Status)
	}

	if tx.CardDetails != nil {
		row.CardholderName = displayValue(tx.CardDetails.CardholderName)
		row.LastDigitsCardNumber = tx.CardDetails.LastDigitsCardNumber
		row.CardBrand = tx.CardDetails.CardBrand
		if label, ok := cardBrandLabels[tx.CardDetails.CardBrand]; ok {
			row.CardBrandLabel = label
		} else {
			row.CardBrandLabel = tx.CardDetails.CardBrand
		}
	}

	return row
}

// rowAmount renders the row's amount. A lost or still-open dispute is
// money leaving the merchant; a won dispute returns it.
func rowAmount(tx ledger_dto.Transaction) string {
	if strings.EqualFold(tx.TransactionType, ledger_dto.TransactionTypeDispute) {
		won := tx.State != nil && tx.State.Status == ledger_dto.DisputeStatusWon
		if !won {
			return currency.NegativePoundsPence(tx.Amount)
		}
	}
	return currency.PoundsPence(tx.Amount)
}
