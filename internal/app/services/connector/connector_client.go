package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"go.uber.org/zap"
)

var (
	connectorClientInstance contracts.ConnectorClient
	onceConnectorClient     sync.Once
)

type connectorClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewConnectorClient(baseUrl string, logger *zap.Logger) contracts.ConnectorClient {
	onceConnectorClient.Do(func() {
		connectorClientInstance = &connectorClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
			Log:        logger,
		}
	})
	return connectorClientInstance
}

func (c *connectorClient) GetGatewayAccount(ctx context.Context, gatewayAccountID string) (*responses.GatewayAccount, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("connectorClient.GetGatewayAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
	)

	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.ConnectorAccountPath, gatewayAccountID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServiceConnector)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("connectorClient.GetGatewayAccount error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ServiceConnector)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrGatewayAccountNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceConnector)
	}

	account := new(responses.GatewayAccount)
	if err := json.NewDecoder(resp.Body).Decode(account); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceConnector)
	}
	return account, nil
}

func (c *connectorClient) GetAcceptedCardTypes(ctx context.Context, gatewayAccountID string) ([]responses.CardType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("connectorClient.GetAcceptedCardTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
	)

	endpoint := fmt.Sprintf("%s%s/%s/card-types", c.BaseUrl, constvars.ConnectorAccountPath, gatewayAccountID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServiceConnector)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ServiceConnector)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceConnector)
	}

	cardTypes := new(responses.CardTypesResponse)
	if err := json.NewDecoder(resp.Body).Decode(cardTypes); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceConnector)
	}
	return cardTypes.CardTypes, nil
}

func (c *connectorClient) SubmitRefund(ctx context.Context, gatewayAccountID, chargeID string, request *requests.CreateRefundRequest) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("connectorClient.SubmitRefund called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
		zap.String(constvars.LoggingTransactionIDKey, chargeID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s%s/%s/charges/%s/refunds", c.BaseUrl, constvars.ConnectorAccountPath, gatewayAccountID, chargeID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err, constvars.ServiceConnector)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("connectorClient.SubmitRefund error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err, constvars.ServiceConnector)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK, constvars.StatusAccepted:
		return nil
	case constvars.StatusPreconditionFailed:
		return exceptions.ErrRefundAmountOutOfRange(nil)
	default:
		return exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceConnector)
	}
}
