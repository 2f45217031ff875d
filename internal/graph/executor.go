package graph

import (
	"context"

	"github.com/graphql-go/graphql"
)

// Request is one GraphQL operation as sent over HTTP
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Executor runs requests against a schema with a fixed query context
type Executor struct {
	schema graphql.Schema
	qc     *Context
}

// NewExecutor creates an executor that hands qc to every resolver
func NewExecutor(schema graphql.Schema, qc *Context) *Executor {
	return &Executor{
		schema: schema,
		qc:     qc,
	}
}

// Execute runs a single request. Parse, validation and resolver failures are
// reported in the result's Errors, never as a Go error.
func (e *Executor) Execute(ctx context.Context, req Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         e.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        WithContext(ctx, e.qc),
	})
}
