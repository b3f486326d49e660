package contracts

import (
	"context"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

type ProductsClient interface {
	ListProductsByGatewayAccount(ctx context.Context, gatewayAccountID string) ([]responses.Product, error)
}

type ProductUsecase interface {
	ListProducts(ctx context.Context, gatewayAccountID string) ([]responses.Product, error)
}
