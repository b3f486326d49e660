package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/config"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/utils"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sessionData is the payload persisted in Redis under the session key.
type sessionData struct {
	UserExternalID string `json:"user_external_id"`
	CreatedAt      string `json:"created_at"`
}

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

type sessionUsecase struct {
	RedisRepository  contracts.RedisRepository
	AdminusersClient contracts.AdminusersClient
	SessionConfig    config.Session
	Log              *zap.Logger
}

func NewSessionUsecase(
	redisRepository contracts.RedisRepository,
	adminusersClient contracts.AdminusersClient,
	sessionConfig config.Session,
	logger *zap.Logger,
) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		sessionUsecaseInstance = &sessionUsecase{
			RedisRepository:  redisRepository,
			AdminusersClient: adminusersClient,
			SessionConfig:    sessionConfig,
			Log:              logger,
		}
	})
	return sessionUsecaseInstance
}

func (uc *sessionUsecase) ResolveUser(ctx context.Context, cookieValue string) (*responses.User, error) {
	sessionID, err := utils.ParseSessionToken(cookieValue, uc.SessionConfig.JWTSecret)
	if err != nil {
		return nil, exceptions.ErrNotAuthenticated(err)
	}

	stored, err := uc.RedisRepository.Get(ctx, constvars.SessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if stored == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	var session sessionData
	if err := json.Unmarshal([]byte(stored), &session); err != nil {
		return nil, exceptions.ErrSessionNotFound(err)
	}

	user, err := uc.AdminusersClient.FindUserByExternalID(ctx, session.UserExternalID)
	if err != nil {
		return nil, err
	}
	if user.Disabled {
		return nil, exceptions.ErrNotAuthenticated(nil)
	}
	return user, nil
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, user *responses.User) (string, error) {
	sessionID := uuid.New().String()
	ttl := time.Duration(uc.SessionConfig.TTLInMinutes) * time.Minute

	session := sessionData{
		UserExternalID: user.ExternalID,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	err := uc.RedisRepository.Set(ctx, constvars.SessionKeyPrefix+sessionID, session, ttl)
	if err != nil {
		return "", err
	}

	cookieValue, err := utils.GenerateSessionToken(sessionID, uc.SessionConfig.JWTSecret, ttl)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("sessionUsecase.CreateSession error signing session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrNotAuthenticated(err)
	}
	return cookieValue, nil
}

func (uc *sessionUsecase) DestroySession(ctx context.Context, cookieValue string) error {
	sessionID, err := utils.ParseSessionToken(cookieValue, uc.SessionConfig.JWTSecret)
	if err != nil {
		return exceptions.ErrNotAuthenticated(err)
	}
	return uc.RedisRepository.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
}
