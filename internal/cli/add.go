// Package cli provides the template mutation commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/replykit/replykit/internal/store"
)

var (
	addBody      string
	addBodyStdin bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addBody, "body", "b", "", "template body")
	addCmd.Flags().BoolVar(&addBodyStdin, "stdin", false, "read the body from stdin")
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new template",
	Example: `  # One-liner
  replykit add "Thanks" --body "Thank you for reaching out."

  # Multi-line body from stdin
  cat reply.txt | replykit add "Long form" --stdin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := addBody
		if addBodyStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read body from stdin: %w", err)
			}
			body = string(data)
		}

		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		t, err := s.Create(args[0], body)
		if err != nil {
			if errors.Is(err, store.ErrTitleRequired) {
				return fmt.Errorf("title must not be blank")
			}
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, t)
		}
		printSuccess("Created '%s' (%s)", t.Title, shortID(t.ID))
		return nil
	},
}

// resolveBody picks the body for edit: flag value when set, stdin
// when requested, otherwise the current body is kept.
func resolveBody(cmd *cobra.Command, current string) (string, error) {
	if cmd.Flags().Changed("stdin") {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read body from stdin: %w", err)
		}
		return string(data), nil
	}
	if cmd.Flags().Changed("body") {
		body, _ := cmd.Flags().GetString("body")
		return body, nil
	}
	return current, nil
}
