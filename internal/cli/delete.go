package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteForce bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "delete without confirmation")
}

var deleteCmd = &cobra.Command{
	Use:     "delete <template>",
	Aliases: []string{"rm"},
	Short:   "Delete a template",
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

		ok, err := approveDestructive(
			fmt.Sprintf("Delete '%s'?", t.Title),
			fmt.Sprintf("refusing to delete '%s' without confirmation", t.Title),
			deleteForce,
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}

		if err := s.Delete(t.ID); err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{"deleted": true, "id": t.ID})
		}
		printSuccess("Deleted '%s'", t.Title)
		return nil
	},
}
