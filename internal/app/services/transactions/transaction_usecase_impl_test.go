package transactions

import (
	"context"
	"testing"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubLedgerClient struct {
	transaction *ledger_dto.Transaction
	search      *ledger_dto.TransactionSearchResult
	events      *ledger_dto.TransactionEventsResponse
	summary     *ledger_dto.TransactionSummary
	dispute     *ledger_dto.Transaction
	disputeErr  error
}

func (s *stubLedgerClient) GetTransaction(ctx context.Context, transactionID, gatewayAccountID string) (*ledger_dto.Transaction, error) {
	if s.transaction == nil {
		return nil, exceptions.ErrTransactionNotFound(nil)
	}
	return s.transaction, nil
}

func (s *stubLedgerClient) SearchTransactions(ctx context.Context, gatewayAccountID string, request *requests.TransactionSearchRequest) (*ledger_dto.TransactionSearchResult, error) {
	return s.search, nil
}

func (s *stubLedgerClient) GetTransactionEvents(ctx context.Context, transactionID, gatewayAccountID string) (*ledger_dto.TransactionEventsResponse, error) {
	return s.events, nil
}

func (s *stubLedgerClient) GetRelatedDisputeTransaction(ctx context.Context, parentTransactionID, gatewayAccountID string) (*ledger_dto.Transaction, error) {
	return s.dispute, s.disputeErr
}

func (s *stubLedgerClient) GetTransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (*ledger_dto.TransactionSummary, error) {
	return s.summary, nil
}

type stubConnectorClient struct {
	account         *responses.GatewayAccount
	cardTypes       []responses.CardType
	refundedCharge  string
	refundedRequest *requests.CreateRefundRequest
}

func (s *stubConnectorClient) GetGatewayAccount(ctx context.Context, gatewayAccountID string) (*responses.GatewayAccount, error) {
	return s.account, nil
}

func (s *stubConnectorClient) GetAcceptedCardTypes(ctx context.Context, gatewayAccountID string) ([]responses.CardType, error) {
	return s.cardTypes, nil
}

func (s *stubConnectorClient) SubmitRefund(ctx context.Context, gatewayAccountID, chargeID string, request *requests.CreateRefundRequest) error {
	s.refundedCharge = chargeID
	s.refundedRequest = request
	return nil
}

func newTestUsecase(ledgerClient *stubLedgerClient, connectorClient *stubConnectorClient) *transactionUsecase {
	return &transactionUsecase{
		LedgerClient:    ledgerClient,
		ConnectorClient: connectorClient,
		Log:             zap.NewNop(),
	}
}

func amountAvailable(v int64) *int64 { return &v }

func TestGetTransactionDetail(t *testing.T) {
	t.Run("Refund row hoists payment details onto the view", func(t *testing.T) {
		ledgerStub := &stubLedgerClient{
			transaction: &ledger_dto.Transaction{
				TransactionID:       "re-1",
				ParentTransactionID: "tx-parent",
				TransactionType:     "REFUND",
				Amount:              500,
				PaymentDetails: &ledger_dto.PaymentDetails{
					Reference:   "order-42",
					Description: "t-shirt",
					Email:       "buyer@example.com",
				},
			},
			events: &ledger_dto.TransactionEventsResponse{
				Events: []ledger_dto.TransactionEvent{
					{ResourceType: "REFUND", Timestamp: "2026-01-02T10:00:00Z"},
				},
			},
		}
		connectorStub := &stubConnectorClient{account: &responses.GatewayAccount{ExternalID: "ext-1"}}
		uc := newTestUsecase(ledgerStub, connectorStub)

		view, err := uc.GetTransactionDetail(context.Background(), "1", "re-1")

		assert.NoError(t, err)
		assert.Equal(t, "tx-parent", view.ChargeID, "charge id should point at the parent payment")
		assert.Equal(t, "order-42", view.Reference)
		assert.Equal(t, "buyer@example.com", view.Email)
		assert.Len(t, view.Events, 1)
		assert.Equal(t, "refund", view.Events[0].Type)
	})

	t.Run("Disputed payment picks up dispute data", func(t *testing.T) {
		ledgerStub := &stubLedgerClient{
			transaction: &ledger_dto.Transaction{
				TransactionID:   "tx-1",
				TransactionType: "PAYMENT",
				Amount:          10000,
				Disputed:        true,
				RefundSummary:   &ledger_dto.RefundSummary{Status: "unavailable"},
			},
			events: &ledger_dto.TransactionEventsResponse{},
			dispute: &ledger_dto.Transaction{
				TransactionID: "dp-1",
				Amount:        10000,
				Reason:        "fraudulent",
				State:         &ledger_dto.TransactionState{Status: "needs_response"},
			},
		}
		connectorStub := &stubConnectorClient{account: &responses.GatewayAccount{ExternalID: "ext-1"}}
		uc := newTestUsecase(ledgerStub, connectorStub)

		view, err := uc.GetTransactionDetail(context.Background(), "1", "tx-1")

		assert.NoError(t, err)
		assert.NotNil(t, view.Dispute)
		assert.Equal(t, "£100.00", view.Dispute.AmountFriendly)
		assert.True(t, view.RefundUnavailableDueToDispute)
	})

	t.Run("Dispute lookup failure does not sink the page", func(t *testing.T) {
		ledgerStub := &stubLedgerClient{
			transaction: &ledger_dto.Transaction{
				TransactionID:   "tx-1",
				TransactionType: "PAYMENT",
				Disputed:        true,
			},
			events:     &ledger_dto.TransactionEventsResponse{},
			disputeErr: exceptions.ErrUpstreamStatus(502, "ledger"),
		}
		connectorStub := &stubConnectorClient{account: &responses.GatewayAccount{}}
		uc := newTestUsecase(ledgerStub, connectorStub)

		view, err := uc.GetTransactionDetail(context.Background(), "1", "tx-1")

		assert.NoError(t, err)
		assert.Nil(t, view.Dispute)
	})
}

func TestListTransactions(t *testing.T) {
	ledgerStub := &stubLedgerClient{
		search: &ledger_dto.TransactionSearchResult{
			Total: 2,
			Count: 2,
			Page:  1,
			Results: []ledger_dto.Transaction{
				{TransactionID: "tx-1", TransactionType: "PAYMENT", Amount: 1000,
					CardDetails: &ledger_dto.CardDetails{CardBrand: "visa"}},
				{TransactionID: "dp-1", TransactionType: "DISPUTE", Amount: 1000,
					State: &ledger_dto.TransactionState{Status: "lost"}},
			},
		},
	}
	connectorStub := &stubConnectorClient{
		account:   &responses.GatewayAccount{ExternalID: "ext-1"},
		cardTypes: []responses.CardType{{Brand: "visa", Label: "Visa"}},
	}
	uc := newTestUsecase(ledgerStub, connectorStub)

	request := &requests.TransactionSearchRequest{Page: 1, DisplaySize: 100}
	view, err := uc.ListTransactions(context.Background(), "1", request)

	assert.NoError(t, err)
	assert.Equal(t, "ext-1", view.GatewayAccountExternalID)
	assert.Equal(t, "Visa", view.Results[0].CardBrandLabel)
	assert.Equal(t, "–£10.00", view.Results[1].AmountFriendly, "lost dispute should render as a debit")
}

func TestSubmitRefund(t *testing.T) {
	newLedgerStub := func(status string, available int64) *stubLedgerClient {
		return &stubLedgerClient{
			transaction: &ledger_dto.Transaction{
				TransactionID:   "tx-1",
				TransactionType: "PAYMENT",
				RefundSummary: &ledger_dto.RefundSummary{
					Status:          status,
					AmountAvailable: amountAvailable(available),
				},
			},
		}
	}

	t.Run("Accepted when amount within available", func(t *testing.T) {
		connectorStub := &stubConnectorClient{}
		uc := newTestUsecase(newLedgerStub("available", 2000), connectorStub)

		err := uc.SubmitRefund(context.Background(), "1", "tx-1", &requests.CreateRefundRequest{
			Amount:                1500,
			RefundAmountAvailable: 2000,
		})

		assert.NoError(t, err)
		assert.Equal(t, "tx-1", connectorStub.refundedCharge)
	})

	t.Run("Rejected when refund unavailable", func(t *testing.T) {
		uc := newTestUsecase(newLedgerStub("unavailable", 0), &stubConnectorClient{})

		err := uc.SubmitRefund(context.Background(), "1", "tx-1", &requests.CreateRefundRequest{Amount: 100})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 412, customErr.StatusCode)
	})

	t.Run("Rejected when amount exceeds available", func(t *testing.T) {
		uc := newTestUsecase(newLedgerStub("available", 1000), &stubConnectorClient{})

		err := uc.SubmitRefund(context.Background(), "1", "tx-1", &requests.CreateRefundRequest{
			Amount:                1500,
			RefundAmountAvailable: 1000,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 412, customErr.StatusCode)
	})

	t.Run("Rejected on stale amount available", func(t *testing.T) {
		uc := newTestUsecase(newLedgerStub("available", 2000), &stubConnectorClient{})

		err := uc.SubmitRefund(context.Background(), "1", "tx-1", &requests.CreateRefundRequest{
			Amount:                500,
			RefundAmountAvailable: 1000,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 412, customErr.StatusCode)
	})
}
