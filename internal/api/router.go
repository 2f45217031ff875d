package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/graphql-demo-go/internal/api/apierr"
	"github.com/mcoot/graphql-demo-go/internal/api/handler"
	"github.com/mcoot/graphql-demo-go/internal/dependencies/clock"
	"github.com/mcoot/graphql-demo-go/internal/dependencies/random"
	"github.com/mcoot/graphql-demo-go/internal/metrics"
	"github.com/mcoot/graphql-demo-go/internal/middleware"
	"github.com/mcoot/graphql-demo-go/internal/web/playground"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	Executor     handler.Executor
	Players      handler.PlayerCounter
	Metrics      *metrics.Metrics
	Clock        clock.Clock
	Random       random.Random
	StartedAt    time.Time
	Playground   playground.Config
	MaxBodyBytes int64
}

// NewRouter creates the HTTP handler serving the playground, the GraphQL
// endpoint, the subscriptions stub, health and metrics
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	graphqlHandler := handler.NewGraphQLHandler(cfg.Executor, observer(cfg.Metrics), cfg.Logger, cfg.MaxBodyBytes)
	playgroundHandler := handler.NewPlaygroundHandler(cfg.Playground)
	healthHandler := handler.NewHealthHandler(cfg.Players, cfg.Clock, cfg.StartedAt, cfg.Logger)

	// Route-level metrics only run for matched routes, so the fallback
	// handlers are instrumented separately
	notFound := http.Handler(http.HandlerFunc(handler.NotFound))
	methodNotAllowed := http.Handler(http.HandlerFunc(handler.MethodNotAllowed))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
		notFound = cfg.Metrics.Middleware()(notFound)
		methodNotAllowed = cfg.Metrics.Middleware()(methodNotAllowed)
	}
	r.NotFoundHandler = notFound
	r.MethodNotAllowedHandler = methodNotAllowed

	r.Handle("/", playgroundHandler).Methods(http.MethodGet)
	r.Handle("/graphql", graphqlHandler).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/subscriptions", handler.Subscriptions).Methods(http.MethodGet)
	r.Handle("/health", healthHandler).Methods(http.MethodGet)
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	// Applied inside out: request id, then logging, then panic recovery
	var h http.Handler = r
	h = middleware.Recovery(cfg.Logger, writeInternalError)(h)
	h = middleware.Logging(cfg.Logger)(h)
	h = middleware.RequestID(cfg.Random)(h)
	return h
}

func writeInternalError(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

// observer avoids storing a typed nil in the handler's interface field
func observer(m *metrics.Metrics) handler.OperationObserver {
	if m == nil {
		return nil
	}
	return m
}
