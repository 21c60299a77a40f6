package rest

import (
	"net/http"

	"games-backend/application/commands/bus"
	querybus "games-backend/application/queries/bus"
	"games-backend/interfaces/http/rest/handlers"
	"games-backend/interfaces/http/rest/middleware"
	"games-backend/pkg/auth"
	pkgerrors "games-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// ReadinessCheck reports whether a dependency can serve traffic
type ReadinessCheck func(r *http.Request) error

// Router creates and configures the HTTP router
type Router struct {
	commandBus     *bus.CommandBus
	queryBus       *querybus.QueryBus
	validator      *auth.JWTValidator
	errorHandler   *pkgerrors.ErrorHandler
	metricsHandler http.Handler
	readiness      []ReadinessCheck
	middlewares    []func(http.Handler) http.Handler
	enableCORS     bool
	logger         *zap.Logger
}

// RouterOption customizes the router
type RouterOption func(*Router)

// WithMetricsHandler exposes h on GET /metrics
func WithMetricsHandler(h http.Handler) RouterOption {
	return func(rt *Router) { rt.metricsHandler = h }
}

// WithReadinessCheck adds a check to GET /ready
func WithReadinessCheck(check ReadinessCheck) RouterOption {
	return func(rt *Router) { rt.readiness = append(rt.readiness, check) }
}

// WithMiddleware runs mw around every request after request logging
func WithMiddleware(mw func(http.Handler) http.Handler) RouterOption {
	return func(rt *Router) { rt.middlewares = append(rt.middlewares, mw) }
}

// WithCORS toggles the CORS middleware
func WithCORS(enabled bool) RouterOption {
	return func(rt *Router) { rt.enableCORS = enabled }
}

// NewRouter creates a new router instance. A nil validator means identities
// can only come from an upstream authorizer.
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	validator *auth.JWTValidator,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
	opts ...RouterOption,
) *Router {
	rt := &Router{
		commandBus:   commandBus,
		queryBus:     queryBus,
		validator:    validator,
		errorHandler: errorHandler,
		enableCORS:   true,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(rt.errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.middlewares...)

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", rt.metricsHandler)
	}

	gameHandler := handlers.NewGameHandler(rt.commandBus, rt.queryBus, rt.errorHandler, rt.logger)

	router.Route("/games", func(r chi.Router) {
		r.Get("/{gameId}", gameHandler.GetGame)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.validator, rt.errorHandler, rt.logger))
			r.Put("/", gameHandler.UpdateGame)
			r.Post("/", gameHandler.CreateGame)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck runs the registered dependency checks
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	for _, check := range rt.readiness {
		if err := check(req); err != nil {
			rt.logger.Warn("Readiness check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"not ready"}`))
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ready"}`))
}
