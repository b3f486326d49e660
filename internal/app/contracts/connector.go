package contracts

import (
	"context"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

type ConnectorClient interface {
	GetGatewayAccount(ctx context.Context, gatewayAccountID string) (*responses.GatewayAccount, error)
	GetAcceptedCardTypes(ctx context.Context, gatewayAccountID string) ([]responses.CardType, error)
	SubmitRefund(ctx context.Context, gatewayAccountID, chargeID string, request *requests.CreateRefundRequest) error
}
