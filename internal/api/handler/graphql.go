package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/mcoot/graphql-demo-go/internal/api/response"
	"github.com/mcoot/graphql-demo-go/internal/graph"
	"github.com/mcoot/graphql-demo-go/internal/middleware"
)

// Executor runs a single GraphQL request
type Executor interface {
	Execute(ctx context.Context, req graph.Request) *graphql.Result
}

// OperationObserver is told the outcome of every executed operation
type OperationObserver interface {
	ObserveOperation(ok bool)
}

// GraphQLHandler serves /graphql
type GraphQLHandler struct {
	executor     Executor
	observer     OperationObserver
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewGraphQLHandler creates a GraphQL handler. observer may be nil.
func NewGraphQLHandler(executor Executor, observer OperationObserver, logger *slog.Logger, maxBodyBytes int64) *GraphQLHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &GraphQLHandler{
		executor:     executor,
		observer:     observer,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// ServeHTTP handles GET and POST /graphql
func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqs, batch, err := parseRequest(w, r, h.maxBodyBytes)
	if err != nil {
		h.logger.Debug("rejected graphql request",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
		response.GraphQLError(w, requestStatus(err), err.Error())
		return
	}

	results := make([]*graphql.Result, 0, len(reqs))
	for _, req := range reqs {
		result := h.executor.Execute(r.Context(), req)
		if h.observer != nil {
			h.observer.ObserveOperation(!result.HasErrors())
		}
		if result.HasErrors() {
			h.logger.Debug("graphql operation failed",
				slog.String("request_id", middleware.GetRequestID(r.Context())),
				slog.String("operation", req.OperationName),
				slog.Int("errors", len(result.Errors)),
			)
		}
		results = append(results, result)
	}

	response.GraphQL(w, results, batch)
}
