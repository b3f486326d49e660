package adminusers

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
	adminusersClientInstance contracts.AdminusersClient
	onceAdminusersClient     sync.Once
)

type adminusersClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewAdminusersClient(baseUrl string, logger *zap.Logger) contracts.AdminusersClient {
	onceAdminusersClient.Do(func() {
		adminusersClientInstance = &adminusersClient{
			BaseUrl:    baseUrl,
			HTTPClient: &http.Client{Timeout: 30 * time.Second},
			Log:        logger,
		}
	})
	return adminusersClientInstance
}

func (c *adminusersClient) FindUserByExternalID(ctx context.Context, userExternalID string) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("adminusersClient.FindUserByExternalID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userExternalID),
	)

	endpoint := fmt.Sprintf("%s%s/%s", c.BaseUrl, constvars.AdminusersUserPath, userExternalID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServiceAdminusers)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("adminusersClient.FindUserByExternalID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ServiceAdminusers)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceAdminusers)
	}

	user := new(responses.User)
	if err := json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceAdminusers)
	}
	return user, nil
}

func (c *adminusersClient) GetServiceUsers(ctx context.Context, serviceExternalID string) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("adminusersClient.GetServiceUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	endpoint := fmt.Sprintf("%s%s/%s/users", c.BaseUrl, constvars.AdminusersServicePath, serviceExternalID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, constvars.ServiceAdminusers)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderRequestID, requestID)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err, constvars.ServiceAdminusers)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrUpstreamStatus(resp.StatusCode, constvars.ServiceAdminusers)
	}

	var users []responses.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ServiceAdminusers)
	}
	return users, nil
}
