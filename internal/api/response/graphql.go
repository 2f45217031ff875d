package response

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
)

// HasErrors reports whether any result carries a request or field error
func HasErrors(results []*graphql.Result) bool {
	for _, r := range results {
		if r.HasErrors() {
			return true
		}
	}
	return false
}

// GraphQL writes executed results: 400 if any of them has errors, 200 otherwise.
// A batch is written as a JSON array in request order, a single result as an object.
func GraphQL(w http.ResponseWriter, results []*graphql.Result, batch bool) {
	status := http.StatusOK
	if HasErrors(results) {
		status = http.StatusBadRequest
	}

	var payload any
	if batch {
		payload = results
	} else if len(results) > 0 {
		payload = results[0]
	}
	JSON(w, status, payload)
}

// GraphQLError writes a request-level error in the GraphQL response shape
func GraphQLError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, &graphql.Result{
		Errors: []gqlerrors.FormattedError{gqlerrors.NewFormattedError(message)},
	})
}
