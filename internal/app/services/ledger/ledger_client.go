package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/ledger_dto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxAttempts bounds the retries on transient connection failures.
const maxAttempts = 3

var (
	ledgerClientInstance contracts.LedgerClient
	onceLedgerClient     sync.Once
)

type ledgerClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewLedgerClient(baseUrl string, logger *zap.Logger) contracts.LedgerClient {
	onceLedgerClient.Do(func() {
		ledgerClientInstance = &ledgerClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
			Limiter:    rate.NewLimiter(rate.Limit(50), 100),
			Log:        logger,
		}
	})
	return ledgerClientInstance
}

func (c *ledgerClient) GetTransaction(ctx context.Context, transactionID, gatewayAccountID string) (*ledger_dto.Transaction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("ledgerClient.GetTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)

	query := url.Values{}
	query.Set("account_id", gatewayAccountID)
	endpoint := fmt.Sprintf("%s%s/%s?%s", c.BaseUrl, constvars.LedgerTransactionPath, transactionID, query.Encode())

	resp, err := c.getWithRetry(ctx, requestID, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrTransactionNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceLedger)
	}

	transaction := new(ledger_dto.Transaction)
	if err := json.NewDecoder(resp.Body).Decode(transaction); err != nil {
		c.Log.Error("ledgerClient.GetTransaction error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceLedger)
	}
	return transaction, nil
}

func (c *ledgerClient) SearchTransactions(ctx context.Context, gatewayAccountID string, request *requests.TransactionSearchRequest) (*ledger_dto.TransactionSearchResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("ledgerClient.SearchTransactions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
	)

	query := url.Values{}
	query.Set("account_id", gatewayAccountID)
	query.Set("with_parent_transaction", "true")
	query.Set(constvars.ParamPage, strconv.Itoa(request.Page))
	query.Set(constvars.ParamDisplaySize, strconv.Itoa(request.DisplaySize))
	setIfPresent(query, constvars.ParamReference, request.Reference)
	setIfPresent(query, constvars.ParamEmail, request.Email)
	setIfPresent(query, constvars.ParamCardholderName, request.CardholderName)
	setIfPresent(query, constvars.ParamLastDigits, request.LastDigitsCardNumber)
	setIfPresent(query, constvars.ParamState, request.State)
	setIfPresent(query, constvars.ParamFromDate, request.FromDate)
	setIfPresent(query, constvars.ParamToDate, request.ToDate)

	endpoint := fmt.Sprintf("%s%s?%s", c.BaseUrl, constvars.LedgerTransactionPath, query.Encode())

	resp, err := c.getWithRetry(ctx, requestID, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceLedger)
	}

	result := new(ledger_dto.TransactionSearchResult)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		c.Log.Error("ledgerClient.SearchTransactions error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceLedger)
	}
	return result, nil
}

func (c *ledgerClient) GetTransactionEvents(ctx context.Context, transactionID, gatewayAccountID string) (*ledger_dto.TransactionEventsResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("ledgerClient.GetTransactionEvents called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, transactionID),
	)

	query := url.Values{}
	query.Set("gateway_account_id", gatewayAccountID)
	endpoint := fmt.Sprintf("%s%s/%s/event?%s", c.BaseUrl, constvars.LedgerTransactionPath, transactionID, query.Encode())

	resp, err := c.getWithRetry(ctx, requestID, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrTransactionNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceLedger)
	}

	events := new(ledger_dto.TransactionEventsResponse)
	if err := json.NewDecoder(resp.Body).Decode(events); err != nil {
		c.Log.Error("ledgerClient.GetTransactionEvents error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceLedger)
	}
	return events, nil
}

// GetRelatedDisputeTransaction looks up the dispute raised against a
// payment. Returns nil without error when ledger holds no dispute for
// the parent.
func (c *ledgerClient) GetRelatedDisputeTransaction(ctx context.Context, parentTransactionID, gatewayAccountID string) (*ledger_dto.Transaction, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("ledgerClient.GetRelatedDisputeTransaction called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTransactionIDKey, parentTransactionID),
	)

	query := url.Values{}
	query.Set("account_id", gatewayAccountID)
	query.Set("parent_transaction_id", parentTransactionID)
	query.Set("transaction_type", ledger_dto.TransactionTypeDispute)
	endpoint := fmt.Sprintf("%s%s?%s", c.BaseUrl, constvars.LedgerTransactionPath, query.Encode())

	resp, err := c.getWithRetry(ctx, requestID, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceLedger)
	}

	result := new(ledger_dto.TransactionSearchResult)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		c.Log.Error("ledgerClient.GetRelatedDisputeTransaction error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceLedger)
	}
	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

func (c *ledgerClient) GetTransactionSummary(ctx context.Context, gatewayAccountID, fromDate, toDate string) (*ledger_dto.TransactionSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("ledgerClient.GetTransactionSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
	)

	query := url.Values{}
	query.Set("account_id", gatewayAccountID)
	setIfPresent(query, constvars.ParamFromDate, fromDate)
	setIfPresent(query, constvars.ParamToDate, toDate)
	endpoint := fmt.Sprintf("%s%s?%s", c.BaseUrl, constvars.LedgerTransactionSummaryPath, query.Encode())

	resp, err := c.getWithRetry(ctx, requestID, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceLedger)
	}

	summary := new(ledger_dto.TransactionSummary)
	if err := json.NewDecoder(resp.Body).Decode(summary); err != nil {
		c.Log.Error("ledgerClient.GetTransactionSummary error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceLedger)
	}
	return summary, nil
}

// getWithRetry performs a GET, retrying transient connection failures
// up to maxAttempts. Requests are paced through the client limiter so a
// retry storm cannot hammer ledger.
func (c *ledgerClient) getWithRetry(ctx context.Context, requestID, endpoint string) (*http.Response, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}

		req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
		if err != nil {
			return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServiceLedger)
		}
		req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
		req.Header.Set(constvars.HeaderRequestID, requestID)

		resp, err := c.HTTPClient.Do(req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !isRetryable(err) || attempt == maxAttempts {
			break
		}
		c.Log.Warn("ledgerClient retrying after transient failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(err),
		)
	}
	return nil, exceptions.ErrSendHTTPRequest(lastErr, constvars.ServiceLedger)
}

func isRetryable(err error) bool {
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
