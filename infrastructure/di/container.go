package di

import (
	"context"
	"net/http"

	"games-backend/application/commands/bus"
	"games-backend/application/ports"
	querybus "games-backend/application/queries/bus"
	"games-backend/infrastructure/config"
	"games-backend/interfaces/http/rest"
	"games-backend/pkg/auth"
	pkgerrors "games-backend/pkg/errors"
	"games-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	GameRepo        ports.GameRepository
	TranslationRepo ports.TranslationRepository
	CommandBus      *bus.CommandBus
	QueryBus        *querybus.QueryBus
	JWTValidator    *auth.JWTValidator
	ErrorHandler    *pkgerrors.ErrorHandler
	MetricsHandler  http.Handler
	MetricsFlush    observability.HTTPMiddleware
}

// Router builds the HTTP router over the container's buses
func (c *Container) Router() *rest.Router {
	opts := []rest.RouterOption{rest.WithCORS(c.Config.EnableCORS)}
	if c.MetricsHandler != nil {
		opts = append(opts, rest.WithMetricsHandler(c.MetricsHandler))
	}
	if c.MetricsFlush != nil {
		opts = append(opts, rest.WithMiddleware(c.MetricsFlush))
	}
	if pinger, ok := c.TranslationRepo.(interface{ Ping(context.Context) error }); ok {
		opts = append(opts, rest.WithReadinessCheck(func(r *http.Request) error {
			return pinger.Ping(r.Context())
		}))
	}

	return rest.NewRouter(
		c.CommandBus,
		c.QueryBus,
		c.JWTValidator,
		c.ErrorHandler,
		c.Logger,
		opts...,
	)
}
