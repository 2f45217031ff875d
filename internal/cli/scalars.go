package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

const (
	addQuery   = `query Add($a: Int!, $b: Int!) { add(a: $a, b: $b) }`
	helloQuery = `query Hello { hello }`
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two integers on the server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseInt32(args[0])
			if err != nil {
				return err
			}
			b, err := parseInt32(args[1])
			if err != nil {
				return err
			}

			var result AddResult
			req := GraphQLRequest{Query: addQuery, Variables: map[string]any{"a": a, "b": b}}
			if _, err := client.Query(cmd.Context(), req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newHelloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Fetch the greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HelloResult
			if _, err := client.Query(cmd.Context(), GraphQLRequest{Query: helloQuery}, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a 32-bit integer", s)
	}
	return int32(n), nil
}
