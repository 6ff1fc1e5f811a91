// ABOUTME: Upload command for publishing a new note.
// ABOUTME: Reads optional content and attachment files and can ask Gemini for tags.

package main

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/harper/neonotes/internal/ai"
	"github.com/harper/neonotes/internal/app"
	"github.com/harper/neonotes/internal/models"
	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <title>",
	Short: "Upload a note",
	Long: `Publish a new note as the signed-in user.

Content can be given inline, read from a file, or left empty when a file is
attached. Set --price to sell the note as premium.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		description, _ := flags.GetString("description")
		content, _ := flags.GetString("content")
		contentFile, _ := flags.GetString("content-file")
		course, _ := flags.GetString("course")
		year, _ := flags.GetString("year")
		subject, _ := flags.GetString("subject")
		tags, _ := flags.GetStringSlice("tag")
		price, _ := flags.GetFloat64("price")
		filePath, _ := flags.GetString("file")
		aiTags, _ := flags.GetBool("ai-tags")

		if contentFile != "" {
			data, err := os.ReadFile(contentFile) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read content: %w", err)
			}
			content = string(data)
		}

		draft := app.Draft{
			Title:       args[0],
			Description: description,
			Content:     content,
			Course:      course,
			Year:        year,
			Subject:     subject,
			Tags:        tags,
			IsPremium:   flags.Changed("price"),
			Price:       price,
		}

		if filePath != "" {
			upload, err := readUpload(filePath)
			if err != nil {
				return err
			}
			draft.File = upload
		}

		if aiTags {
			if !assistant.Configured() {
				fmt.Fprintln(os.Stderr, "AI tagging skipped: "+ai.MsgNotConfigured)
			} else {
				suggested := assistant.SuggestTags(cmd.Context(), draft.Title, draft.Description)
				draft.Tags = models.MergeTags(draft.Tags, suggested...)
			}
		}

		note, err := state.Upload(cmd.Context(), draft)
		if err != nil {
			return fmt.Errorf("failed to upload note: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Published %s (%s)", note.Title, note.ID)))
		return nil
	},
}

func readUpload(path string) (*app.FileUpload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() > app.MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", app.ErrFileTooLarge, filepath.Base(path), info.Size())
	}
	data, err := os.ReadFile(path) //nolint:gosec // User-specified file path is expected CLI behavior
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return &app.FileUpload{
		Name:     filepath.Base(path),
		MimeType: detectMimeType(path, data),
		Data:     data,
	}, nil
}

func detectMimeType(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}

func init() {
	uploadCmd.Flags().StringP("description", "d", "", "short description")
	uploadCmd.Flags().StringP("content", "c", "", "note text")
	uploadCmd.Flags().String("content-file", "", "read note text from a file")
	uploadCmd.Flags().String("course", "", "course name")
	uploadCmd.Flags().String("year", "", "academic year")
	uploadCmd.Flags().String("subject", "", "subject")
	uploadCmd.Flags().StringSliceP("tag", "t", nil, "tag (repeatable or comma separated)")
	uploadCmd.Flags().Float64("price", 0, "sell as a premium note at this price")
	uploadCmd.Flags().StringP("file", "f", "", "attach a file (max 2 MiB)")
	uploadCmd.Flags().Bool("ai-tags", false, "add tags suggested by Gemini")
	rootCmd.AddCommand(uploadCmd)
}
