package contracts

import (
	"context"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/requests"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

type PublicAuthClient interface {
	CreateToken(ctx context.Context, request *requests.CreateTokenRequest) (*responses.CreateTokenResponse, error)
	ListActiveTokens(ctx context.Context, gatewayAccountID string) ([]responses.Token, error)
	RevokeToken(ctx context.Context, gatewayAccountID, tokenLink string) error
}

type TokenUsecase interface {
	CreateToken(ctx context.Context, gatewayAccountID string, request *requests.CreateTokenRequest) (*responses.CreateTokenResponse, error)
	ListActiveTokens(ctx context.Context, gatewayAccountID string) ([]responses.Token, error)
	RevokeToken(ctx context.Context, gatewayAccountID, tokenLink string) error
}
