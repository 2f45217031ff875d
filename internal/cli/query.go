package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newQueryCmd() *cobra.Command {
	var variables, operation, file string

	cmd := &cobra.Command{
		Use:   "query [document]",
		Short: "Send a GraphQL document",
		Long: `Send an arbitrary GraphQL document to the server and print the data.

The document is taken from the argument, from --file, or from stdin when the
argument is "-".`,
		Example: `  gqlcli query '{ hello }'
  gqlcli query 'query Sum($a: Int!, $b: Int!) { add(a: $a, b: $b) }' --variables '{"a":1,"b":2}'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args, file)
			if err != nil {
				return err
			}

			req := GraphQLRequest{Query: doc, OperationName: operation}
			if variables != "" {
				if err := json.Unmarshal([]byte(variables), &req.Variables); err != nil {
					return fmt.Errorf("--variables must be a JSON object: %w", err)
				}
			}

			out := newOutput(cmd)
			resp, err := client.Query(cmd.Context(), req, nil)
			if resp != nil && hasData(resp.Data) {
				out.Print(resp.Data)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&variables, "variables", "", "Variables as a JSON object")
	cmd.Flags().StringVar(&operation, "operation", "", "Operation name to run")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the document from a file")

	return cmd
}

func readDocument(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("give the document as an argument or with --file, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("a GraphQL document is required")
	}
}

func hasData(data json.RawMessage) bool {
	return len(data) > 0 && string(data) != "null"
}
