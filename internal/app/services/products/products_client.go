package products

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"go.uber.org/zap"
)

var (
	productsClientInstance contracts.ProductsClient
	onceProductsClient     sync.Once
)

type productsClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewProductsClient(baseUrl string, logger *zap.Logger) contracts.ProductsClient {
	onceProductsClient.Do(func() {
		productsClientInstance = &productsClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
			Log:        logger,
		}
	})
	return productsClientInstance
}

func (c *productsClient) ListProductsByGatewayAccount(ctx context.Context, gatewayAccountID string) ([]responses.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("productsClient.ListProductsByGatewayAccount called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingGatewayAccountIDKey, gatewayAccountID),
	)

	endpoint := fmt.Sprintf("%s%s/%s/products", c.BaseUrl, constvars.ProductsGatewayAccountPath, gatewayAccountID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServiceProducts)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("productsClient.ListProductsByGatewayAccount error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ServiceProducts)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceProducts)
	}

	var products []responses.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceProducts)
	}
	return products, nil
}
