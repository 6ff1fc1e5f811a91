// ABOUTME: Import command for restoring notes from backup.
// ABOUTME: Accepts an export file or a bare array of notes and replaces the collection.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/harper/neonotes/internal/models"
	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import notes",
	Long: `Replace the note collection with the notes in a JSON file. The file may
be a neonotes export or a plain array of notes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0]) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return err
		}

		notes, err := parseImport(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		if err := state.ImportNotes(cmd.Context(), notes); err != nil {
			return fmt.Errorf("failed to import notes: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Imported %d notes", len(notes))))
		return nil
	},
}

func parseImport(data []byte) ([]models.Note, error) {
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte("[")) {
		var notes []models.Note
		if err := json.Unmarshal(data, &notes); err != nil {
			return nil, err
		}
		return notes, nil
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, err
	}
	return export.Notes, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
