// ABOUTME: MCP prompts for common study workflows.
// ABOUTME: Provides pre-configured prompts for AI agent interactions.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "study-guide",
		Description: "Turn a note into a structured study guide",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "note_id",
				Description: "ID of the note to study",
				Required:    true,
			},
		},
	}, s.getStudyGuidePrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "quiz-me",
		Description: "Quiz me on the contents of a note",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "note_id",
				Description: "ID of the note to be quizzed on",
				Required:    true,
			},
			{
				Name:        "questions",
				Description: "Number of questions (default 5)",
				Required:    false,
			},
		},
	}, s.getQuizPrompt)
}

func userPrompt(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: text,
				},
			},
		},
	}
}

func (s *Server) getStudyGuidePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	noteID, ok := req.Params.Arguments["note_id"]
	if !ok || noteID == "" {
		return nil, fmt.Errorf("note_id argument is required")
	}

	template := fmt.Sprintf(`Build a study guide from the note with ID: %s

1. Use the get_note tool to retrieve the note content
2. Use the summarize_note tool for a quick overview
3. Organize the material into:
   - Key concepts with one-line definitions
   - Worked examples or rules to remember
   - Common mistakes to avoid
4. Finish with three review questions`, noteID)

	return userPrompt(template), nil
}

func (s *Server) getQuizPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	noteID, ok := req.Params.Arguments["note_id"]
	if !ok || noteID == "" {
		return nil, fmt.Errorf("note_id argument is required")
	}
	count, ok := req.Params.Arguments["questions"]
	if !ok || count == "" {
		count = "5"
	}

	template := fmt.Sprintf(`Quiz me on the note with ID: %s

1. Use the get_note tool to read the note
2. Ask me %s questions one at a time, mixing recall and application
3. Wait for my answer before revealing the correct one
4. If I get stuck, use the chat_note tool to pull an explanation grounded in the note
5. End with a score and the topics I should revisit`, noteID, count)

	return userPrompt(template), nil
}
