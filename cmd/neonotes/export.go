// ABOUTME: Export command for backing up notes.
// ABOUTME: Supports JSON and markdown export formats.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/neonotes/internal/models"
	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ExportData is the JSON backup format. Notes keep their stored shape.
type ExportData struct {
	ExportedAt time.Time     `json:"exported_at"`
	Version    string        `json:"version"`
	Notes      []models.Note `json:"notes"`
}

// frontMatter is the YAML header of a markdown export.
type frontMatter struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Author      string   `yaml:"author"`
	Course      string   `yaml:"course,omitempty"`
	Year        string   `yaml:"year,omitempty"`
	Subject     string   `yaml:"subject,omitempty"`
	Tags        []string `yaml:"tags"`
	Created     string   `yaml:"created"`
	Likes       int      `yaml:"likes"`
	Downloads   int      `yaml:"downloads"`
	Price       *float64 `yaml:"price,omitempty"`
	File        string   `yaml:"file,omitempty"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export notes to JSON or markdown format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		notePrefix, _ := cmd.Flags().GetString("note")

		notes := state.Notes()
		if notePrefix != "" {
			note, err := state.Find(notePrefix)
			if err != nil {
				return fmt.Errorf("failed to get note: %w", err)
			}
			notes = []models.Note{note}
		}

		switch format {
		case "json":
			return exportJSON(notes, outputPath)
		case "md":
			return exportMarkdown(notes, outputPath)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

func exportJSON(notes []models.Note, outputPath string) error {
	export := ExportData{
		ExportedAt: time.Now(),
		Version:    "1.0",
		Notes:      notes,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}

	if outputPath == "" || outputPath == "-" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return err
	}
	fmt.Println(ui.Success(fmt.Sprintf("Exported %d notes to %s", len(notes), outputPath)))
	return nil
}

func exportMarkdown(notes []models.Note, outputDir string) error {
	if outputDir == "" {
		outputDir = "export"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, n := range notes {
		fm := frontMatter{
			ID:          n.ID,
			Title:       n.Title,
			Description: n.Description,
			Author:      n.Author.Name,
			Course:      n.Course,
			Year:        n.Year,
			Subject:     n.Subject,
			Tags:        n.Tags,
			Created:     n.CreatedAt,
			Likes:       n.Likes,
			Downloads:   n.Downloads,
			Price:       n.Price,
			File:        n.FileName,
		}

		// Write markdown file with frontmatter
		var sb strings.Builder
		sb.WriteString("---\n")

		header, err := yaml.Marshal(fm)
		if err != nil {
			return err
		}
		sb.Write(header)
		sb.WriteString("---\n\n")
		sb.WriteString(n.Content)
		sb.WriteString("\n")

		filename := sanitizeFilename(n.BaseFileName()) + ".md"
		if err := os.WriteFile(filepath.Join(outputDir, filename), []byte(sb.String()), 0644); err != nil {
			return err
		}

		// Export attached file
		if n.HasFile() {
			data, _, err := models.DecodeDataURI(n.FileData)
			if err != nil {
				fmt.Printf("Warning: skipping file of %q: %v\n", n.Title, err)
				continue
			}
			attDir := filepath.Join(outputDir, "files", n.ID)
			if err := os.MkdirAll(attDir, 0755); err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(attDir, sanitizeFilename(n.FileName)), data, 0644); err != nil {
				return err
			}
		}
	}

	fmt.Println(ui.Success(fmt.Sprintf("Exported %d notes to %s", len(notes), outputDir)))
	return nil
}

func sanitizeFilename(name string) string {
	// Replace unsafe characters
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = replacer.Replace(name)
	if len(name) > 100 {
		name = name[:100]
	}
	if name == "" {
		name = "note"
	}
	return name
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	exportCmd.Flags().StringP("note", "n", "", "single note ID to export")
	rootCmd.AddCommand(exportCmd)
}
