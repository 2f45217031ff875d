package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/graphql-demo-go/internal/api"
	"github.com/mcoot/graphql-demo-go/internal/config"
	"github.com/mcoot/graphql-demo-go/internal/factory"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gqldemo-server",
		Short: "GraphQL demo server",
		Long: `gqldemo-server serves a small GraphQL API (add, hello, players, player)
at /graphql, an interactive playground at / and Prometheus metrics at /metrics.

Settings come from flags, GQLDEMO_* environment variables or a --config file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Create application factory
	app, err := factory.New(ctx, cfg.Factory(logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Executor:   app.Executor,
		Players:    app.Roster,
		Metrics:    app.Metrics,
		Clock:      app.Clock,
		Random:     app.Random,
		StartedAt:  app.StartedAt,
		Playground: cfg.Playground(),
	})

	server := api.NewServer(router, cfg.Server(), logger)

	// Bind before serving so an unusable address fails startup
	ln, err := server.Listen()
	if err != nil {
		logger.Error("failed to bind", slog.String("addr", server.Addr()), slog.String("error", err.Error()))
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	logger.Info("server started",
		slog.String("addr", ln.Addr().String()),
		slog.String("storage", cfg.StorageType),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}
