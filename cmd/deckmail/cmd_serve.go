package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deckmail/internal/app"
	"github.com/dmitrymomot/deckmail/pkg/httpserver"
	"github.com/dmitrymomot/deckmail/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Starts the HTTP API on HTTP_ADDR (default :8000) and blocks until
SIGINT or SIGTERM, then drains in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := app.NewLogger(cfg.App, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	svc, err := app.NewReportService(cfg, log)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(cmd.Context(), app.NewRouter(cfg, svc, log))
}
