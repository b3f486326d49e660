package middlewares

import (
	"github.com/alphagov/pay-selfservice-sub005/internal/app/config"
	"github.com/alphagov/pay-selfservice-sub005/internal/app/contracts"
	"go.uber.org/zap"
)

type Middlewares struct {
	SessionUsecase contracts.SessionUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewMiddlewares(sessionUsecase contracts.SessionUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		SessionUsecase: sessionUsecase,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}
