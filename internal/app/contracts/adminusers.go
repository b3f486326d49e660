package contracts

import (
	"context"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

type AdminusersClient interface {
	FindUserByExternalID(ctx context.Context, userExternalID string) (*responses.User, error)
	GetServiceUsers(ctx context.Context, serviceExternalID string) ([]responses.User, error)
}
