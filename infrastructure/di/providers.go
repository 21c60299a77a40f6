package di

import (
	"context"
	"fmt"
	"net/http"

	"games-backend/application/commands"
	"games-backend/application/commands/bus"
	commandhandlers "games-backend/application/commands/handlers"
	"games-backend/application/ports"
	"games-backend/application/queries"
	querybus "games-backend/application/queries/bus"
	queryhandlers "games-backend/application/queries/handlers"
	"games-backend/application/services"
	domainconfig "games-backend/domain/config"
	"games-backend/domain/core/validators"
	"games-backend/infrastructure/config"
	"games-backend/infrastructure/messaging/eventbridge"
	"games-backend/infrastructure/persistence/dynamodb"
	"games-backend/infrastructure/persistence/redis"
	"games-backend/infrastructure/translation"
	"games-backend/pkg/auth"
	pkgerrors "games-backend/pkg/errors"
	"games-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	awstranslate "github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "games-backend"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", serviceName)), nil
}

// ProvideAWSConfig creates AWS configuration. With tracing enabled every SDK
// call is recorded as an X-Ray subsegment.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return aws.Config{}, err
	}

	if cfg.EnableTracing {
		awsv2.AWSV2Instrumentor(&awsCfg.APIOptions)
	}

	return awsCfg, nil
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config, cfg *config.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	})
}

// ProvideTranslateClient creates an Amazon Translate client
func ProvideTranslateClient(awsCfg aws.Config) *awstranslate.Client {
	return awstranslate.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideGameRepository creates the catalog repository
func ProvideGameRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.GameRepository {
	return dynamodb.NewGameRepository(client, cfg.TableName, logger)
}

// ProvideTranslationRepository creates the translation store selected by TRANSLATION_STORE
func ProvideTranslationRepository(
	ctx context.Context,
	client *awsdynamodb.Client,
	cfg *config.Config,
	logger *zap.Logger,
) (ports.TranslationRepository, func(), error) {
	if cfg.TranslationStore == config.StoreRedis {
		repo, err := redis.NewTranslationRepository(ctx, redis.Config{
			URL:       cfg.RedisURL,
			TTL:       cfg.RedisTTLSeconds,
			KeyPrefix: cfg.RedisKeyPrefix,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := repo.Close(); err != nil {
				logger.Warn("Failed to close redis connection", zap.Error(err))
			}
		}
		return repo, cleanup, nil
	}

	return dynamodb.NewTranslationRepository(client, cfg.LangTableName, logger), func() {}, nil
}

// ProvideTranslator creates the translator selected by TRANSLATOR_PROVIDER,
// behind a circuit breaker unless disabled
func ProvideTranslator(client *awstranslate.Client, cfg *config.Config, logger *zap.Logger) ports.Translator {
	var translator ports.Translator
	switch cfg.TranslatorProvider {
	case config.TranslatorOpenAI:
		translator = translation.NewOpenAITranslator(translation.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			BaseURL: cfg.OpenAIBaseURL,
		})
	default:
		translator = translation.NewAWSTranslator(client)
	}

	if !cfg.BreakerEnabled {
		return translator
	}

	return translation.NewBreakerTranslator(translator, translation.BreakerConfig{
		Name:        cfg.TranslatorProvider + "-translator",
		MaxFailures: uint32(cfg.BreakerMaxFailures),
		OpenTimeout: cfg.BreakerOpenTimeout(),
	}, logger)
}

// ProvideEventPublisher creates the EventBridge publisher. Without an event
// bus name publishing is disabled and nil is returned.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return nil
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideMetrics creates the metrics recorder selected by METRICS_BACKEND
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) ports.Metrics {
	if !cfg.EnableMetrics {
		return observability.NopMetrics{}
	}

	namespace := fmt.Sprintf("GamesBackend/%s", cfg.Environment)
	if cfg.MetricsBackend == config.MetricsPrometheus {
		return observability.NewPrometheusMetrics("games_backend")
	}
	return observability.NewCloudWatchMetrics(namespace, client, logger)
}

// ProvideMetricsHandler returns the scrape endpoint when metrics are kept in-process
func ProvideMetricsHandler(metrics ports.Metrics) http.Handler {
	if m, ok := metrics.(*observability.PrometheusMetrics); ok {
		return m.Handler()
	}
	return nil
}

// ProvideMetricsMiddleware returns the per-request flush for buffered
// CloudWatch metrics, or nil for other backends
func ProvideMetricsMiddleware(metrics ports.Metrics) observability.HTTPMiddleware {
	if m, ok := metrics.(*observability.CloudWatchMetrics); ok {
		return m.Middleware
	}
	return nil
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(serviceName, cfg.EnableTracing)
}

// ProvideTranslationCache creates the read-through translation cache
func ProvideTranslationCache(
	store ports.TranslationRepository,
	translator ports.Translator,
	metrics ports.Metrics,
	publisher ports.EventPublisher,
	tracer *observability.Tracer,
	cfg *config.Config,
	logger *zap.Logger,
) *services.TranslationCache {
	return services.NewTranslationCache(store, translator, cfg.SourceLanguage, metrics, publisher, tracer, logger)
}

// ProvideDomainConfig selects the catalog rules for the environment
func ProvideDomainConfig(cfg *config.Config) (*domainconfig.DomainConfig, error) {
	dc := domainconfig.LoadDomainConfig(cfg.Environment)
	if err := dc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid domain config: %w", err)
	}
	return dc, nil
}

// ProvideGameValidator creates the catalog domain validator
func ProvideGameValidator(dc *domainconfig.DomainConfig) *validators.GameValidator {
	return validators.NewGameValidatorWithConfig(dc)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	gameRepo ports.GameRepository,
	validator *validators.GameValidator,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(logger))

	updateHandler := commandhandlers.NewUpdateGameHandler(gameRepo, validator, publisher, logger)
	if err := commandBus.Register(commands.UpdateGameCommand{}, updateHandler); err != nil {
		return nil, err
	}

	createHandler := commandhandlers.NewCreateGameHandler(gameRepo, validator, publisher, logger)
	if err := commandBus.Register(commands.CreateGameCommand{}, createHandler); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	gameRepo ports.GameRepository,
	cache *services.TranslationCache,
	tracer *observability.Tracer,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus(
		querybus.LoggingMiddleware(logger),
		querybus.TracingMiddleware(tracer),
	)

	getGameHandler := queryhandlers.NewGetGameHandler(gameRepo, cache, logger)
	if err := queryBus.Register(queries.GetGameQuery{}, getGameHandler); err != nil {
		return nil, err
	}

	return queryBus, nil
}

// ProvideJWTValidator creates the local bearer token validator. Without a
// secret, callers can only be identified by an upstream authorizer.
func ProvideJWTValidator(cfg *config.Config, logger *zap.Logger) (*auth.JWTValidator, error) {
	if cfg.JWTSecret == "" {
		logger.Info("JWT_SECRET not set, relying on the API Gateway authorizer")
		return nil, nil
	}
	return auth.NewJWTValidator(cfg.JWTSecret, cfg.JWTIssuer)
}

// ProvideErrorHandler creates the HTTP error renderer
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.IsDevelopment())
}
