package contracts

import (
	"context"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type SessionUsecase interface {
	// ResolveUser authenticates the signed session cookie value and
	// returns the user it belongs to.
	ResolveUser(ctx context.Context, cookieValue string) (*responses.User, error)
	CreateSession(ctx context.Context, user *responses.User) (string, error)
	DestroySession(ctx context.Context, cookieValue string) error
}
