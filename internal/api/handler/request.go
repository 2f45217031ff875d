package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/mcoot/graphql-demo-go/internal/graph"
)

// DefaultMaxBodyBytes caps the size of a POST body
const DefaultMaxBodyBytes int64 = 1 << 20

// requestError is a problem with the HTTP request itself, before any
// GraphQL execution happens
type requestError struct {
	msg    string
	status int
	cause  error
}

func (e *requestError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *requestError) Unwrap() error {
	return e.cause
}

func badRequest(msg string, cause error) error {
	return &requestError{msg: msg, status: http.StatusBadRequest, cause: cause}
}

// requestStatus returns the HTTP status for a parse error
func requestStatus(err error) int {
	var re *requestError
	if errors.As(err, &re) {
		return re.status
	}
	return http.StatusBadRequest
}

// parseRequest reads one or more GraphQL requests from r. batch is true
// when the body was a JSON array.
func parseRequest(w http.ResponseWriter, r *http.Request, maxBodyBytes int64) (reqs []graph.Request, batch bool, err error) {
	switch r.Method {
	case http.MethodGet:
		req, err := parseValues(r.URL.Query())
		if err != nil {
			return nil, false, err
		}
		return []graph.Request{req}, false, nil
	case http.MethodPost:
	default:
		return nil, false, &requestError{msg: fmt.Sprintf("method %s not allowed", r.Method), status: http.StatusMethodNotAllowed}
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, false, badRequest("invalid Content-Type header", err)
	}

	switch mediaType {
	case "application/json":
		body, err := readBody(w, r, maxBodyBytes)
		if err != nil {
			return nil, false, err
		}
		return parseJSON(body)
	case "application/graphql":
		body, err := readBody(w, r, maxBodyBytes)
		if err != nil {
			return nil, false, err
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, false, badRequest("must provide query string", nil)
		}
		return []graph.Request{{Query: string(body)}}, false, nil
	case "application/x-www-form-urlencoded":
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return nil, false, badRequest("invalid form body", err)
		}
		req, err := parseValues(r.PostForm)
		if err != nil {
			return nil, false, err
		}
		return []graph.Request{req}, false, nil
	default:
		return nil, false, &requestError{
			msg:    fmt.Sprintf("unsupported content type %q", mediaType),
			status: http.StatusUnsupportedMediaType,
		}
	}
}

func readBody(w http.ResponseWriter, r *http.Request, maxBodyBytes int64) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &requestError{msg: "request body too large", status: http.StatusRequestEntityTooLarge, cause: err}
		}
		return nil, badRequest("failed to read request body", err)
	}
	return body, nil
}

func parseJSON(body []byte) ([]graph.Request, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false, badRequest("request body is empty", nil)
	}

	if trimmed[0] == '[' {
		var reqs []graph.Request
		if err := json.Unmarshal(trimmed, &reqs); err != nil {
			return nil, true, badRequest("invalid JSON body", err)
		}
		if len(reqs) == 0 {
			return nil, true, badRequest("batch must contain at least one operation", nil)
		}
		for i, req := range reqs {
			if req.Query == "" {
				return nil, true, badRequest(fmt.Sprintf("operation %d: must provide query string", i), nil)
			}
		}
		return reqs, true, nil
	}

	var req graph.Request
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, false, badRequest("invalid JSON body", err)
	}
	if req.Query == "" {
		return nil, false, badRequest("must provide query string", nil)
	}
	return []graph.Request{req}, false, nil
}

func parseValues(values url.Values) (graph.Request, error) {
	req := graph.Request{
		Query:         values.Get("query"),
		OperationName: values.Get("operationName"),
	}
	if req.Query == "" {
		return req, badRequest("must provide query string", nil)
	}
	if raw := values.Get("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			return req, badRequest("variables must be a JSON object", err)
		}
	}
	return req, nil
}
