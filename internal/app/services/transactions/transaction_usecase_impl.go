package transactions

import (
	"context"
	"fmt"
	"sync"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/legacy"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/views"
	"go.uber.org/zap"
)

var (
	transactionUsecaseInstance contracts.TransactionUsecase
	onceTransactionUsecase     sync.Once
)

type transactionUsecase struct {
	LedgerClient    contracts.LedgerClient
	ConnectorClient contracts.ConnectorClient
	Log             *zap.Logger
}

func NewTransactionUsecase(
	ledgerClient contracts.LedgerClient,
	connectorClient contracts.ConnectorClient,
	logger *zap.Logger,
) contracts.TransactionUsecase {
	onceTransactionUsecase.Do(func() {
		transactionUsecaseInstance = &transactionUsecase{
			LedgerClient:    ledgerClient,
			ConnectorClient: connectorClient,
			Log:             logger,
		}
	})
	return transactionUsecaseInstance
}

func (uc *transactionUsecase) ListTransactions(ctx context.Context, gatewayAccountID string, request *requests.TransactionSearchRequest) (*views.TransactionListView, error) {
	account, err := uc.ConnectorClient.GetGatewayAccount(ctx, gatewayAccountID)
	if err != nil {
		return nil, err
	}

	result, err := uc.LedgerClient.SearchTransactions(ctx, gatewayAccountID, request)
	if err != nil {
		return nil, err
	}

	transformed := legacy.TransformTransactionList(*result)
	listView := views.BuildPaymentList(transformed, uc.cardBrandLabels(ctx, gatewayAccountID), account.ExternalID, request.FilterMap())
	return &listView, nil
}

func (uc *transactionUsecase) GetTransactionDetail(ctx context.Context, gatewayAccountID, transactionID string) (*views.PaymentView, error) {
	account, err := uc.ConnectorClient.GetGatewayAccount(ctx, gatewayAccountID)
	if err != nil {
		return nil, err
	}

	rawTransaction, err := uc.LedgerClient.GetTransaction(ctx, transactionID, gatewayAccountID)
	if err != nil {
		return nil, err
	}
	transaction := legacy.TransformTransaction(*rawTransaction)

	rawEvents, err := uc.LedgerClient.GetTransactionEvents(ctx, transactionID, gatewayAccountID)
	if err != nil {
		return nil, err
	}
	events := legacy.TransformEvents(*rawEvents)

	// The dispute panel is best effort; the payment page still renders
	// when the dispute lookup fails.
	var disputeData *ledger_dto.Transaction
	if transaction.Disputed {
		disputeData, err = uc.LedgerClient.GetRelatedDisputeTransaction(ctx, transactionID, gatewayAccountID)
		if err != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			uc.Log.Warn("transactionUsecase.GetTransactionDetail dispute lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTransactionIDKey, transactionID),
				zap.Error(err),
			)
			disputeData = nil
		}
	}

	view := views.BuildPaymentView(transaction, events.Events, disputeData, account.CorporateExemptionsEnabled)
	return &view, nil
}

func (uc *transactionUsecase) GetTransactionEvents(ctx context.Context, gatewayAccountID, transactionID string) (*ledger_dto.TransactionEventsResponse, error) {
	rawEvents, err := uc.LedgerClient.GetTransactionEvents(ctx, transactionID, gatewayAccountID)
	if err != nil {
		return nil, err
	}
	events := legacy.TransformEvents(*rawEvents)
	return &events, nil
}

func (uc *transactionUsecase) GetTransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (*legacy.TransactionSummary, error) {
	rawSummary, err := uc.LedgerClient.GetTransactionSummary(ctx, gatewayAccountID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	summary := legacy.TransformTransactionSummary(rawSummary)
	return &summary, nil
}

func (uc *transactionUsecase) SubmitRefund(ctx context.Context, gatewayAccountID, transactionID string, request *requests.CreateRefundRequest) error {
	rawTransaction, err := uc.LedgerClient.GetTransaction(ctx, transactionID, gatewayAccountID)
	if err != nil {
		return err
	}
	transaction := legacy.TransformTransaction(*rawTransaction)

	summary := transaction.RefundSummary
	if ledger_dto.RefundSummaryStatus(summary.Status) != ledger_dto.RefundStatusAvailable &&
		ledger_dto.RefundSummaryStatus(summary.Status) != ledger_dto.RefundStatusError {
		return exceptions.ErrRefundNotAvailable(fmt.Errorf("refund status %q", summary.Status))
	}

	available := int64(0)
	if summary.AmountAvailable != nil {
		available = *summary.AmountAvailable
	}
	if request.Amount > available || request.RefundAmountAvailable != available {
		return exceptions.ErrRefundAmountOutOfRange(fmt.Errorf("requested %d of %d available", request.Amount, available))
	}

	return uc.ConnectorClient.SubmitRefund(ctx, gatewayAccountID, transaction.ChargeID, request)
}

// cardBrandLabels maps card brand identifiers onto their display labels
// for the list page. Falls back to an empty map so rows degrade to the
// raw brand value.
func (uc *transactionUsecase) cardBrandLabels(ctx context.Context, gatewayAccountID string) map[string]string {
	cardTypes, err := uc.ConnectorClient.GetAcceptedCardTypes(ctx, gatewayAccountID)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("transactionUsecase.cardBrandLabels lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
			zap.Error(err),
		)
		return map[string]string{}
	}
	labels := make(map[string]string, len(cardTypes))
	for _, cardType := range cardTypes {
		labels[cardType.Brand] = cardType.Label
	}
	return labels
}
