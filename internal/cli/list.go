// Package cli provides the list and show commands.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		templates, err := s.List()
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, templates)
		}

		if len(templates) == 0 {
			fmt.Println("No templates yet. Create one with 'replykit add'.")
			return nil
		}

		rows := make([][]string, 0, len(templates))
		for _, t := range templates {
			rows = append(rows, []string{
				shortID(t.ID),
				truncate(t.Title, 40),
				truncate(t.Body, 50),
				t.UpdatedAt.Local().Format(time.DateTime),
			})
		}
		return writeTable(os.Stdout, []string{"ID", "TITLE", "BODY", "UPDATED"}, rows)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Print one template's full body",
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

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, t)
		}

		fmt.Printf("%s\n\n%s\n", t.Title, t.Body)
		return nil
	},
}
