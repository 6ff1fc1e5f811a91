// ABOUTME: AI study commands: summarize, tag suggestions and tutor chat.
// ABOUTME: All answers come from Gemini or its fixed fallback messages.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/harper/neonotes/internal/ai"
	"github.com/harper/neonotes/internal/ui"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <id>",
	Short: "Summarize a note with AI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := state.Find(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}
		return printMarkdown(assistant.Summarize(cmd.Context(), note.Content))
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags [title] [description]",
	Short: "List tags, or suggest tags for a title with AI",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			tags := state.Tags()
			if len(tags) == 0 {
				fmt.Println("No tags found.")
				return nil
			}
			fmt.Print(ui.FormatTagList(tags))
			return nil
		}

		description := ""
		if len(args) == 2 {
			description = args[1]
		}
		tags := assistant.SuggestTags(cmd.Context(), args[0], description)
		if len(tags) == 0 {
			fmt.Println("No tag suggestions.")
			return nil
		}
		fmt.Println(strings.Join(tags, ", "))
		return nil
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat <id>",
	Short: "Ask the AI tutor about a note",
	Long: `Start a tutoring session grounded in a note's content. Type a question
and press enter; an empty line or "exit" ends the session. With --question a
single answer is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")

		note, err := state.Find(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		if question != "" {
			return printMarkdown(assistant.Chat(cmd.Context(), note.Content, nil, question))
		}

		fmt.Printf("Studying %q. Ask a question, or press enter to quit.\n", note.Title)
		var history []ai.Turn
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			q := strings.TrimSpace(scanner.Text())
			if q == "" || q == "exit" || q == "quit" {
				break
			}
			answer := assistant.Chat(cmd.Context(), note.Content, history, q)
			if err := printMarkdown(answer); err != nil {
				return err
			}
			history = append(history, ai.Turn{Role: "user", Text: q}, ai.Turn{Role: "model", Text: answer})
		}
		return scanner.Err()
	},
}

func printMarkdown(text string) error {
	out, err := ui.FormatNoteContent(text)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func init() {
	chatCmd.Flags().StringP("question", "q", "", "ask a single question and exit")
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(chatCmd)
}
