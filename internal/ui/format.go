// ABOUTME: Terminal UI formatting for neonotes output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/neonotes/internal/app"
	"github.com/harper/neonotes/internal/models"
)

var (
	faint   = color.New(color.Faint).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
)

// ShortID trims long generated ids for list display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatPrice renders "Free" or the premium price.
func FormatPrice(note *models.Note) string {
	if !note.IsPremium || note.Price == nil {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", *note.Price)
}

func likeMark(liked bool) string {
	if liked {
		return magenta("♥")
	}
	return faint("♡")
}

func FormatNoteListItem(note *models.Note, liked bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s", faint(fmt.Sprintf("%-8s", ShortID(note.ID))), bold(note.Title)))
	if note.IsPremium {
		sb.WriteString(" " + yellow(FormatPrice(note)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("            %s · %s · %s\n",
		note.Author.Name,
		faint(note.Course),
		faint(note.CreatedAt)))

	if len(note.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("            %s %s\n",
			faint("Tags:"),
			cyan(strings.Join(note.Tags, ", "))))
	}

	sb.WriteString(fmt.Sprintf("            %s %d  %s %d\n",
		likeMark(liked), note.Likes,
		faint("↓"), note.Downloads))

	return sb.String()
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatNoteHeader(note *models.Note, liked bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(note.Title)))
	if note.Description != "" {
		sb.WriteString(fmt.Sprintf("%s\n", note.Description))
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Author:"), note.Author.Name))
	sb.WriteString(fmt.Sprintf("%s %s / %s / %s\n", faint("Course:"), note.Course, note.Subject, note.Year))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Price:"), FormatPrice(note)))

	if len(note.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Tags:"), cyan(strings.Join(note.Tags, ", "))))
	}
	if note.FileName != "" {
		sb.WriteString(fmt.Sprintf("%s %s %s\n", faint("File:"), note.FileName, faint(fmt.Sprintf("[%s]", note.MimeType))))
	}
	sb.WriteString(fmt.Sprintf("%s %d  %s %d\n", likeMark(liked), note.Likes, faint("Downloads:"), note.Downloads))

	sb.WriteString(Separator())
	return sb.String()
}

func FormatComments(comments []models.Comment) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s %s\n", bold("Discussion"), faint(fmt.Sprintf("(%d)", len(comments)))))
	if len(comments) == 0 {
		sb.WriteString(faint("  No comments yet.") + "\n")
		return sb.String()
	}
	for _, c := range comments {
		sb.WriteString(fmt.Sprintf("  %s %s\n", bold(c.UserName), faint(c.CreatedAt.Local().Format("2006-01-02 15:04"))))
		sb.WriteString(fmt.Sprintf("    %s\n", c.Content))
	}
	return sb.String()
}

func FormatTagList(tags []app.TagCount) string {
	var sb strings.Builder

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			cyan(t.Name),
			faint(fmt.Sprintf("(%d)", t.Count))))
	}

	return sb.String()
}

func FormatStats(st app.Stats) string {
	var sb strings.Builder

	sb.WriteString(bold("Admin Dashboard") + "\n")
	sb.WriteString(Separator())
	rows := []struct {
		label string
		value string
	}{
		{"Total notes", fmt.Sprint(st.TotalNotes)},
		{"Total downloads", fmt.Sprint(st.TotalDownloads)},
		{"Total likes", fmt.Sprint(st.TotalLikes)},
		{"Premium notes", fmt.Sprint(st.PremiumNotes)},
		{"Estimated revenue", fmt.Sprintf("$%.2f", st.EstimatedRevenue)},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("  %-18s %s\n", faint(r.label+":"), r.value))
	}
	return sb.String()
}

func FormatUser(u *models.User) string {
	if u == nil {
		return faint("Not signed in.")
	}
	return fmt.Sprintf("%s %s %s", bold(u.Name), faint("<"+u.Email+">"), cyan(string(u.Role)))
}

func FormatSectionHeader(title string) string {
	return fmt.Sprintf("\n%s\n", bold(title))
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
