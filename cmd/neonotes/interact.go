// ABOUTME: Like, comment and download commands.
// ABOUTME: Everyday interactions with a single note.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like <id>",
	Short: "Like or unlike a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := state.Find(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}
		liked, err := state.ToggleLike(cmd.Context(), note.ID)
		if err != nil {
			return fmt.Errorf("failed to like note: %w", err)
		}
		updated, err := state.Find(note.ID)
		if err != nil {
			return err
		}

		verb := "Unliked"
		if liked {
			verb = "Liked"
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s %q (%d likes)", verb, updated.Title, updated.Likes)))
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <id> <text>",
	Short: "Comment on a note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := state.PostComment(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("failed to post comment: %w", err)
		}
		fmt.Println(ui.Success("Posted comment as " + c.UserName))
		return nil
	},
}

var downloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a note",
	Long: `Save a note's attached file, or its text when there is no file.
Use -o - to write to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath, _ := cmd.Flags().GetString("output")

		file, err := state.Download(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to download note: %w", err)
		}

		if outputPath == "-" {
			_, err := os.Stdout.Write(file.Data)
			return err
		}
		if outputPath == "" {
			outputPath = sanitizeFilename(file.Name)
		}
		if err := os.WriteFile(outputPath, file.Data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Saved %s (%d bytes)", outputPath, len(file.Data))))
		return nil
	},
}

func init() {
	downloadCmd.Flags().StringP("output", "o", "", "output path (default: the note's file name)")
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(downloadCmd)
}
