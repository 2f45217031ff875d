package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/graphql-demo-go/internal/api/apierr"
	"github.com/mcoot/graphql-demo-go/internal/api/response"
	"github.com/mcoot/graphql-demo-go/internal/dependencies/clock"
)

// PlayerCounter reports how many players are loaded
type PlayerCounter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler serves /health
type HealthHandler struct {
	players   PlayerCounter
	clock     clock.Clock
	startedAt time.Time
	logger    *slog.Logger
}

// NewHealthHandler creates a health handler
func NewHealthHandler(players PlayerCounter, clk clock.Clock, startedAt time.Time, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		players:   players,
		clock:     clk,
		startedAt: startedAt,
		logger:    logger,
	}
}

// ServeHTTP handles GET /health
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.players.Count(r.Context())
	if err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		WriteError(w, apierr.NewUnavailableError("player storage unavailable"))
		return
	}

	response.JSON(w, http.StatusOK, response.Health{
		Status:    "ok",
		Players:   count,
		StartedAt: h.startedAt.UTC(),
		Uptime:    h.clock.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
