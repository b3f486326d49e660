package contracts

import (
	"context"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
)

type LedgerClient interface {
	GetTransaction(ctx context.Context, transactionID, gatewayAccountID string) (*ledger_dto.Transaction, error)
	SearchTransactions(ctx context.Context, gatewayAccountID string, request *requests.TransactionSearchRequest) (*ledger_dto.TransactionSearchResult, error)
	GetTransactionEvents(ctx context.Context, transactionID, gatewayAccountID string) (*ledger_dto.TransactionEventsResponse, error)
	GetRelatedDisputeTransaction(ctx context.Context, parentTransactionID, gatewayAccountID string) (*ledger_dto.Transaction, error)
	GetTransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (*ledger_dto.TransactionSummary, error)
}
