// Package cli implements the replykit command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/replykit/replykit/internal/config"
	"github.com/replykit/replykit/internal/logging"
	"github.com/replykit/replykit/internal/storage"
	"github.com/replykit/replykit/internal/store"
)

var (
	cfg            *config.Config
	jsonOutput     bool
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "replykit",
	Short: "Manage canned email replies and paste them into your mail client",
	Long: `Replykit keeps a small personal collection of reusable reply templates
and can push a chosen template into the frontmost compose window of
your mail application, optionally sending it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logging.Setup(cfg.LogLevel, nil)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt; fail instead of asking")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// openStore opens the configured persistence backend and wraps it in
// a template store. The returned cleanup releases the backend.
func openStore() (*store.Store, func(), error) {
	port, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	return store.New(port), func() { _ = port.Close() }, nil
}
