package accounts

import (
	"context"
	"sync"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

var (
	accountUsecaseInstance contracts.AccountUsecase
	onceAccountUsecase     sync.Once
)

type accountUsecase struct {
	ConnectorClient contracts.ConnectorClient
}

func NewAccountUsecase(connectorClient contracts.ConnectorClient) contracts.AccountUsecase {
	onceAccountUsecase.Do(func() {
		accountUsecaseInstance = &accountUsecase{
			ConnectorClient: connectorClient,
		}
	})
	return accountUsecaseInstance
}

func (uc *accountUsecase) GetGatewayAccount(ctx context.Context, gatewayAccountID string) (*responses.GatewayAccount, error) {
	return uc.ConnectorClient.GetGatewayAccount(ctx, gatewayAccountID)
}

func (uc *accountUsecase) GetAcceptedCardTypes(ctx context.Context, gatewayAccountID string) ([]responses.CardType, error) {
	return uc.ConnectorClient.GetAcceptedCardTypes(ctx, gatewayAccountID)
}
