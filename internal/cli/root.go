package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gqlcli",
		Short: "CLI tool for the GraphQL demo server",
		Long: `gqlcli is a CLI tool for the GraphQL demo server.

It wraps the server's queries (add, hello, players, player), can send any
GraphQL document with the query command, and checks server health.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid --output %q: must be text or json", cfg.Output)
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL, cfg.Timeout)
			if cfg.Verbose {
				client.SetTrace(cmd.ErrOrStderr())
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: GQLDEMO_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: GQLDEMO_OUTPUT)")
	rootCmd.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Print each HTTP request and response status to stderr")

	// Add subcommands
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newHelloCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Run executes the CLI with args and returns the process exit code
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		NewOutput(cfg.Output, stdout, stderr).PrintError(err)
		return 1
	}
	return 0
}

// Execute runs the root command
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

func newOutput(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
