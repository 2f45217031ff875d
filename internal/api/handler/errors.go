package handler

import (
	"net/http"

	"github.com/mcoot/graphql-demo-go/internal/api/apierr"
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NotFound answers requests for unknown routes
func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, apierr.NewNotFoundError())
}

// MethodNotAllowed answers known routes called with an unsupported method
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, apierr.NewMethodNotAllowedError())
}
