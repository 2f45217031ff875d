package handler

import (
	"net/http"

	"github.com/mcoot/graphql-demo-go/internal/web/playground"
)

// PlaygroundHandler serves the interactive playground page
type PlaygroundHandler struct {
	config playground.Config
}

// NewPlaygroundHandler creates a playground handler
func NewPlaygroundHandler(config playground.Config) *PlaygroundHandler {
	return &PlaygroundHandler{config: config}
}

// ServeHTTP handles GET /
func (h *PlaygroundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := playground.Page(h.config).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
