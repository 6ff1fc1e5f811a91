// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders header, markdown content and the discussion.

package main

import (
	"fmt"

	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
	Long:  `Display a note with its details, content and comments. The ID may be a unique prefix.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := state.Find(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		fmt.Print(ui.FormatNoteHeader(&note, state.IsLiked(note.ID)))

		rendered, err := ui.FormatNoteContent(note.Content)
		if err != nil {
			return err
		}
		fmt.Print(rendered)

		fmt.Print(ui.FormatComments(note.Comments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
