// Package cli provides the insert command.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/replykit/replykit/internal/automation"
)

var (
	insertSend  bool
	insertForce bool
)

func init() {
	rootCmd.AddCommand(insertCmd)

	insertCmd.Flags().BoolVar(&insertSend, "send", false, "send the message after pasting")
	insertCmd.Flags().BoolVarP(&insertForce, "force", "f", false, "send without confirmation")
}

var insertCmd = &cobra.Command{
	Use:     "insert <template>",
	Aliases: []string{"paste"},
	Short:   "Paste a template into the frontmost compose window",
	Long: `Insert brings the configured mail application to the front, moves the
cursor to the top of the focused compose window, and pastes the
template body there, ahead of any quoted text or signature. With
--send the message is sent immediately afterwards.

The sequence is not retried on failure: a partial paste or a send must
never happen twice.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		t, err := findTemplate(s, args[0])
		if err != nil {
			return err
		}

		if insertSend {
			ok, err := approveDestructive(
				fmt.Sprintf("Paste '%s' and send immediately?", t.Title),
				"refusing to send without confirmation",
				insertForce,
			)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "Cancelled.")
				return nil
			}
		}

		host := automation.NewAppleScriptHost(nil, cfg.MailApp)
		pipeline := automation.NewPipeline(host)

		outcome, err := pipeline.Insert(context.Background(), t.Body, insertSend)
		if err != nil {
			printFailure("Insertion failed: %v", err)
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{"inserted": true, "sent": outcome.Sent, "id": t.ID})
		}
		if outcome.Sent {
			printSuccess("Inserted '%s' and sent", t.Title)
		} else {
			printSuccess("Inserted '%s'", t.Title)
		}
		return nil
	},
}
