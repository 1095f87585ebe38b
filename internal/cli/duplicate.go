package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(duplicateCmd)
}

var duplicateCmd = &cobra.Command{
	Use:     "duplicate <template>",
	Aliases: []string{"dup"},
	Short:   "Duplicate a template",
	Args:    cobra.ExactArgs(1),
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

		dup, err := s.Duplicate(t.ID)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, dup)
		}
		printSuccess("Created '%s' (%s)", dup.Title, shortID(dup.ID))
		return nil
	},
}
