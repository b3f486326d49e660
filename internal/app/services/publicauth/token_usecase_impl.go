package publicauth

import (
	"context"
	"sync"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

var (
	tokenUsecaseInstance contracts.TokenUsecase
	onceTokenUsecase     sync.Once
)

type tokenUsecase struct {
	PublicAuthClient contracts.PublicAuthClient
}

func NewTokenUsecase(publicAuthClient contracts.PublicAuthClient) contracts.TokenUsecase {
	onceTokenUsecase.Do(func() {
		tokenUsecaseInstance = &tokenUsecase{
			PublicAuthClient: publicAuthClient,
		}
	})
	return tokenUsecaseInstance
}

func (uc *tokenUsecase) CreateToken(ctx context.Context, gatewayAccountID string, request *requests.CreateTokenRequest) (*responses.CreateTokenResponse, error) {
	request.GatewayAccountID = gatewayAccountID
	return uc.PublicAuthClient.CreateToken(ctx, request)
}

func (uc *tokenUsecase) ListActiveTokens(ctx context.Context, gatewayAccountID string) ([]responses.Token, error) {
	return uc.PublicAuthClient.ListActiveTokens(ctx, gatewayAccountID)
}

func (uc *tokenUsecase) RevokeToken(ctx context.Context, gatewayAccountID, tokenLink string) error {
	return uc.PublicAuthClient.RevokeToken(ctx, gatewayAccountID, tokenLink)
}
