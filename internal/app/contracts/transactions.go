package contracts

import (
	"context"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/legacy"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/views"
)

type TransactionUsecase interface {
	ListTransactions(ctx context.Context, gatewayAccountID string, request *requests.TransactionSearchRequest) (*views.TransactionListView, error)
	GetTransactionDetail(ctx context.Context, gatewayAccountID, transactionID string) (*views.PaymentView, error)
	GetTransactionEvents(ctx context.Context, gatewayAccountID, transactionID string) (*ledger_dto.TransactionEventsResponse, error)
	GetTransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (*legacy.TransactionSummary, error)
	SubmitRefund(ctx context.Context, gatewayAccountID, transactionID string, request *requests.CreateRefundRequest) error
}
