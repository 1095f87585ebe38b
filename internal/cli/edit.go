package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/replykit/replykit/internal/store"
)

var editTitle string

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title (unchanged if omitted)")
	editCmd.Flags().StringP("body", "b", "", "new body (unchanged if omitted)")
	editCmd.Flags().Bool("stdin", false, "read the new body from stdin")
}

var editCmd = &cobra.Command{
	Use:   "edit <template>",
	Short: "Change a template's title or body",
	Args:  cobra.ExactArgs(1),
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

		title := t.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		body, err := resolveBody(cmd, t.Body)
		if err != nil {
			return err
		}

		updated, err := s.Edit(t.ID, title, body)
		if err != nil {
			if errors.Is(err, store.ErrTitleRequired) {
				return fmt.Errorf("title must not be blank")
			}
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, updated)
		}
		printSuccess("Updated '%s' (%s)", updated.Title, shortID(updated.ID))
		return nil
	},
}
