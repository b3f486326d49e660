package contracts

import (
	"context"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

type AccountUsecase interface {
	GetGatewayAccount(ctx context.Context, gatewayAccountID string) (*responses.GatewayAccount, error)
	GetAcceptedCardTypes(ctx context.Context, gatewayAccountID string) ([]responses.CardType, error)
}
