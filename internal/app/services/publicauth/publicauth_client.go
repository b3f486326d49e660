package publicauth

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
	publicAuthClientInstance contracts.PublicAuthClient
	oncePublicAuthClient     sync.Once
)

type publicAuthClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPublicAuthClient(baseUrl string, logger *zap.Logger) contracts.PublicAuthClient {
	oncePublicAuthClient.Do(func() {
		publicAuthClientInstance = &publicAuthClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
			Log:        logger,
		}
	})
	return publicAuthClientInstance
}

func (c *publicAuthClient) CreateToken(ctx context.Context, request *requests.CreateTokenRequest) (*responses.CreateTokenResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("publicAuthClient.CreateToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, request.GatewayAccountID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := c.BaseUrl + constvars.PublicAuthTokenPath
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServicePublicAuth)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("publicAuthClient.CreateToken error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ServicePublicAuth)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServicePublicAuth)
	}

	token := new(responses.CreateTokenResponse)
	if err := json.NewDecoder(resp.Body).Decode(token); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServicePublicAuth)
	}
	return token, nil
}

func (c *publicAuthClient) ListActiveTokens(ctx context.Context, gatewayAccountID string) ([]responses.Token, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("publicAuthClient.ListActiveTokens called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
	)

	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.PublicAuthTokenPath, gatewayAccountID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServicePublicAuth)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("publicAuthClient.ListActiveTokens error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ServicePublicAuth)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServicePublicAuth)
	}

	tokens := new(responses.TokensResponse)
	if err := json.NewDecoder(resp.Body).Decode(tokens); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServicePublicAuth)
	}
	return tokens.Tokens, nil
}

func (c *publicAuthClient) RevokeToken(ctx context.Context, gatewayAccountID, tokenLink string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("publicAuthClient.RevokeToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
	)

	revokeRequest := requests.RevokeTokenRequest{TokenLink: tokenLink}
	requestJSON, err := json.Marshal(revokeRequest)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.PublicAuthTokenPath, gatewayAccountID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodDelete, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err, constvars.ServicePublicAuth)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("publicAuthClient.RevokeToken error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err, constvars.ServicePublicAuth)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServicePublicAuth)
	}
	return nil
}
