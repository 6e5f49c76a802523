package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/deckmail/pkg/deck"
	"github.com/dmitrymomot/deckmail/svc/report"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Build a deck locally without sending it",
		Long: `Reads a report request (YAML or JSON) and writes the PPTX. Recipients
are not required and no network call is made.`,
		Args: cobra.NoArgs,
		RunE: runRender,
	}
	cmd.Flags().StringP("file", "f", "", "request file (.yaml, .yml, .json or - for stdin)")
	cmd.Flags().StringP("out", "o", "", "output path (default: generated file name in the current directory)")
	cmd.Flags().Bool("plain", false, "render without colours and zebra striping")
	return cmd
}

func runRender(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("file")
	out, _ := cmd.Flags().GetString("out")
	plain, _ := cmd.Flags().GetBool("plain")

	req, err := readRequest(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	svc := report.New(deck.NewBuilder(deck.WithStyling(!plain)), nil)
	art, err := svc.Draft(req)
	if err != nil {
		return err
	}

	if out == "" {
		out = art.Filename
	}
	if err := os.WriteFile(out, art.Data, 0o644); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deck: %s (%d bytes)\n", out, art.Size())
	return nil
}
