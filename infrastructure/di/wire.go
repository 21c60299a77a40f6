//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"games-backend/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideTranslateClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideGameRepository,
	ProvideTranslationRepository,
	ProvideTranslator,
	ProvideEventPublisher,
	ProvideMetrics,
	ProvideMetricsHandler,
	ProvideMetricsMiddleware,
	ProvideTracer,
	ProvideTranslationCache,
	ProvideDomainConfig,
	ProvideGameValidator,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideJWTValidator,
	ProvideErrorHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
