package views

import (
	"testing"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaymentList(t *testing.T) {
	t.Run("Rows are formatted and pagination passes through", func(t *testing.T) {
		result := ledger_dto.TransactionSearchResult{
			Total: 2,
			Count: 2,
			Page:  3,
			Results: []ledger_dto.Transaction{
				{
					TransactionID:   "tx-1",
					TransactionType: "PAYMENT",
					Amount:          2000,
					State:           &ledger_dto.TransactionState{Status: "success"},
					CardDetails:     &ledger_dto.CardDetails{CardBrand: "visa", CardholderName: "T Payer"},
				},
				{
					TransactionID:   "tx-2",
					TransactionType: "PAYMENT",
					Amount:          150,
					CardDetails:     &ledger_dto.CardDetails{CardBrand: "obscure-brand"},
				},
			},
			Links: &ledger_dto.SearchLinks{NextPage: &ledger_dto.Link{Href: "/page/4"}},
		}
		cardBrands := map[string]string{"visa": "Visa"}

		view := BuildPaymentList(result, cardBrands, "account-1", map[string]string{"state": "success"})

		assert.Equal(t, 2, view.Total)
		assert.Equal(t, 3, view.Page)
		assert.Equal(t, "account-1", view.GatewayAccountExternalID)
		assert.Equal(t, "/page/4", view.Links.NextPage.Href)
		assert.Equal(t, "success", view.Filters["state"])

		assert.Equal(t, "£20.00", view.Results[0].AmountFriendly)
		assert.Equal(t, "Visa", view.Results[0].CardBrandLabel)
		assert.Equal(t, "Success", view.Results[0].StateFriendly)
		assert.Equal(t, "£1.50", view.Results[1].AmountFriendly)
		assert.Equal(t, "obscure-brand", view.Results[1].CardBrandLabel, "unknown brands fall back to the raw value")
	})

	t.Run("Disputes render as debits unless won", func(t *testing.T) {
		result := ledger_dto.TransactionSearchResult{
			Total: 3,
			Count: 3,
			Results: []ledger_dto.Transaction{
				{
					TransactionID:   "dispute-1",
					TransactionType: "DISPUTE",
					Amount:          2000,
					State:           &ledger_dto.TransactionState{Status: "under_review"},
				},
				{
					TransactionID:   "dispute-2",
					TransactionType: "DISPUTE",
					Amount:          2000,
					State:           &ledger_dto.TransactionState{Status: "won"},
				},
				{
					TransactionID:   "dispute-3",
					TransactionType: "DISPUTE",
					Amount:          2000,
					State:           &ledger_dto.TransactionState{Status: "lost"},
				},
			},
		}

		view := BuildPaymentList(result, nil, "account-1", nil)

		assert.Equal(t, "–£20.00", view.Results[0].AmountFriendly, "a dispute under review is money leaving")
		assert.Equal(t, "£20.00", view.Results[1].AmountFriendly, "a won dispute comes back as a plain amount")
		assert.Equal(t, "–£20.00", view.Results[2].AmountFriendly)
	})

	t.Run("Redacted row fields display as Data unavailable", func(t *testing.T) {
		result := ledger_dto.TransactionSearchResult{
			Total: 1,
			Count: 1,
			Results: []ledger_dto.Transaction{
				{
					TransactionID:   "tx-1",
					TransactionType: "PAYMENT",
					Reference:       "<DELETED>",
					Email:           "<DELETED>",
				},
			},
		}

		view := BuildPaymentList(result, nil, "account-1", nil)

		assert.Equal(t, DataUnavailable, view.Results[0].Reference)
		assert.Equal(t, DataUnavailable, view.Results[0].Email)
	})

	t.Run("Empty result set yields an empty row slice", func(t *testing.T) {
		view := BuildPaymentList(ledger_dto.TransactionSearchResult{}, nil, "account-1", nil)

		assert.NotNil(t, view.Results)
		assert.Empty(t, view.Results)
	})
}
