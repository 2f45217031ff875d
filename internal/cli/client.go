package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the server
type Client struct {
	baseURL    string
	httpClient *http.Client
	trace      io.Writer
}

// NewClient creates a new client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetTrace makes the client write one line per request and per response to w.
// A nil w turns tracing off.
func (c *Client) SetTrace(w io.Writer) {
	c.trace = w
}

func (c *Client) tracef(format string, args ...any) {
	if c.trace != nil {
		_, _ = fmt.Fprintf(c.trace, format, args...)
	}
}

// APIError represents an error response from a non-GraphQL route
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func (e *APIError) String() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// GraphQLRequest is the POST body sent to /graphql
type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// GraphQLError is one entry of a response's errors list
type GraphQLError struct {
	Message   string `json:"message"`
	Locations []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
	Path []any `json:"path,omitempty"`
}

// GraphQLResponse is the decoded body of a /graphql response
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// ResponseError is returned when the server reports GraphQL errors. The
// response is kept so partial data can still be shown.
type ResponseError struct {
	StatusCode int
	Response   GraphQLResponse
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Response.Errors))
	for _, gqlErr := range e.Response.Errors {
		msgs = append(msgs, gqlErr.Message)
	}
	return fmt.Sprintf("graphql: %s", strings.Join(msgs, "; "))
}

// Query posts req to /graphql. Data is decoded into result when the response
// has no errors; otherwise a *ResponseError is returned.
func (c *Client) Query(ctx context.Context, req GraphQLRequest, result any) (*GraphQLResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	status, respBody, err := c.send(ctx, http.MethodPost, "/graphql", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var resp GraphQLResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("HTTP %d: %s", status, strings.TrimSpace(string(respBody)))
	}

	if len(resp.Errors) > 0 {
		return &resp, &ResponseError{StatusCode: status, Response: resp}
	}
	if status >= 400 {
		return &resp, fmt.Errorf("HTTP %d without GraphQL errors", status)
	}

	if result != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, result); err != nil {
			return &resp, fmt.Errorf("failed to parse data: %w", err)
		}
	}
	return &resp, nil
}

// Get performs a GET request against a JSON route
func (c *Client) Get(ctx context.Context, path string, result any) error {
	status, respBody, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	// Check for error responses
	if status >= 400 {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Code != "" {
			return fmt.Errorf("%s", errResp.Error.String())
		}
		return fmt.Errorf("HTTP %d: %s", status, string(respBody))
	}

	// Parse successful response
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	c.tracef("> %s %s\n", method, req.URL)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.tracef("< %s %s failed: %v\n", method, req.URL, err)
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	c.tracef("< %s (%s)\n", resp.Status, time.Since(start).Round(time.Millisecond))
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}
