// Package cli provides the import and export commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/replykit/replykit/internal/transfer"
)

var (
	importForce bool
	exportDir   string
)

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)

	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "overwrite existing templates without confirmation")
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", ".", "directory to write the export file to")
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all templates with the contents of a JSON export",
	Long: `Import replaces the entire collection with the templates in the given
JSON file. This is a full replacement, not a merge; when the current
collection is non-empty you will be asked to confirm.

Malformed entries are repaired rather than dropped: missing titles
become "Untitled", missing ids and timestamps are regenerated.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		imported, err := transfer.Import(data)
		if err != nil {
			if errors.Is(err, transfer.ErrBadFormat) {
				return fmt.Errorf("%s is not a template export: %v", args[0], err)
			}
			return err
		}

		s, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		existing, err := s.List()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			ok, err := approveDestructive(
				fmt.Sprintf("Replace %d existing template(s) with %d imported one(s)?", len(existing), len(imported)),
				fmt.Sprintf("import would replace %d existing template(s)", len(existing)),
				importForce,
			)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(os.Stderr, "Cancelled.")
				return nil
			}
		}

		if err := s.ReplaceAll(imported); err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{"imported": len(imported)})
		}
		printSuccess("Imported %d template(s)", len(imported))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all templates to a JSON file",
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

		data, err := transfer.Export(templates)
		if err != nil {
			if errors.Is(err, transfer.ErrNothingToExport) {
				return fmt.Errorf("nothing to export, the collection is empty")
			}
			return err
		}

		path := filepath.Join(exportDir, transfer.ExportFileName)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}

		if IsJSONOutput() {
			return WriteOutput(os.Stdout, map[string]any{"exported": len(templates), "path": path})
		}
		printSuccess("Exported %d template(s) to %s", len(templates), path)
		return nil
	},
}
