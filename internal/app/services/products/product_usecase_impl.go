package products

import (
	"context"
	"sync"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/currency"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

var (
	productUsecaseInstance contracts.ProductUsecase
	onceProductUsecase     sync.Once
)

type productUsecase struct {
	ProductsClient contracts.ProductsClient
}

func NewProductUsecase(productsClient contracts.ProductsClient) contracts.ProductUsecase {
	onceProductUsecase.Do(func() {
		productUsecaseInstance = &productUsecase{
			ProductsClient: productsClient,
		}
	})
	return productUsecaseInstance
}

func (uc *productUsecase) ListProducts(ctx context.Context, gatewayAccountID string) ([]responses.Product, error) {
	products, err := uc.ProductsClient.ListProductsByGatewayAccount(ctx, gatewayAccountID)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Price > 0 {
			products[i].PriceFriendly = currency.PoundsPence(products[i].Price)
		}
	}
	return products, nil
}
