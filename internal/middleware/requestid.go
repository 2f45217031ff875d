package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/graphql-demo-go/internal/dependencies/random"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds ids accepted from clients
const maxRequestIDLen = 128

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestID reuses the client's X-Request-ID or generates one, echoes it in the
// response and stores it in the request context
func RequestID(rnd random.Random) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = rnd.HexID(8)
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDContextKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the request id from the context, or ""
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}
