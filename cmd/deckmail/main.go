// deckmail builds analysis report decks and emails them.
//
// Usage:
//
//	deckmail serve
//	deckmail render -f report.yaml -o report.pptx
//	deckmail send -f report.json
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "deckmail",
		Short: "Build PowerPoint analysis reports and email them",
		Long: "deckmail turns a business name, a numbered summary and tabular data\n" +
			"into a PPTX deck and sends it through the configured email backend.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: version,
	}
	root.PersistentFlags().StringSlice("env-file", nil, "additional .env files to load")

	root.AddCommand(newServeCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newSendCmd())
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
