package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dsa-quiz-service/internal/config"
	transport "dsa-quiz-service/internal/transport/http"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath *string) *cobra.Command {
	var portFlag string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, portFlag)
		},
	}
	cmd.Flags().StringVar(&portFlag, "port", "", "port to listen on (overrides config and PORT)")
	return cmd
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	rt, err := buildRuntime(ctx, cfg, runtimeOptions{})
	if err != nil {
		return err
	}
	defer rt.Close()
	logger := rt.logger

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	tick := config.TTLDuration(cfg.Quiz.TickInterval, time.Second)
	wsHandler := transport.NewWSHandler(rt.service, tick, logger)
	handler := transport.NewRouter(rt.service, wsHandler, transport.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Gatherer:       rt.registry,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", finalPort).Str("leaderboard", cfg.Leaderboard.Backend).Msg("starting quiz service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
