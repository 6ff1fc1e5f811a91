// ABOUTME: List and home commands for browsing notes.
// ABOUTME: Supports search, author filter and recent/popular ordering.

package main

import (
	"fmt"

	"github.com/harper/neonotes/internal/app"
	"github.com/harper/neonotes/internal/models"
	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "browse"},
	Short:   "List notes",
	Long:    `List notes, optionally filtered by a title or tag search and by author.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		searchFlag, _ := cmd.Flags().GetString("search")
		authorFlag, _ := cmd.Flags().GetString("author")
		sortFlag, _ := cmd.Flags().GetString("sort")
		limitFlag, _ := cmd.Flags().GetInt("limit")

		notes, err := state.Browse(app.BrowseFilter{
			Query:    searchFlag,
			AuthorID: authorFlag,
			Sort:     sortFlag,
			Limit:    limitFlag,
		})
		if err != nil {
			return err
		}

		printNotes(notes)
		return nil
	},
}

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show recent and popular notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if user := state.CurrentUser(); user != nil {
			fmt.Printf("Welcome back, %s.\n", user.Name)
		}
		fmt.Print(ui.FormatSectionHeader("Recently Added"))
		printNotes(state.Recent(app.DefaultSectionSize))
		fmt.Print(ui.FormatSectionHeader("Most Popular"))
		printNotes(state.Popular(app.DefaultSectionSize))
		return nil
	},
}

func printNotes(notes []models.Note) {
	if len(notes) == 0 {
		fmt.Println("No notes found.")
		return
	}
	for i := range notes {
		fmt.Print(ui.FormatNoteListItem(&notes[i], state.IsLiked(notes[i].ID)))
	}
}

func init() {
	listCmd.Flags().StringP("search", "s", "", "match title or tags")
	listCmd.Flags().String("author", "", "only notes by this author ID")
	listCmd.Flags().String("sort", "", "ordering (recent|popular)")
	listCmd.Flags().IntP("limit", "n", 0, "max notes to show")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(homeCmd)
}
