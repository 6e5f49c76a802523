package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deckmail/internal/app"
)

func newSendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Run the full pipeline once and print the result",
		Long: `Reads a report request (YAML or JSON), builds the deck and sends it
through the backend selected by EMAIL_SENDER. The result is printed as JSON.`,
		Args: cobra.NoArgs,
		RunE: runSend,
	}
	cmd.Flags().StringP("file", "f", "", "request file (.yaml, .yml, .json or - for stdin)")
	return cmd
}

func runSend(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	req, err := readRequest(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := app.NewLogger(cfg.App, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	svc, err := app.NewReportService(cfg, log)
	if err != nil {
		return err
	}

	res, err := svc.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), res)
}
