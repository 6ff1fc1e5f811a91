// ABOUTME: Summaries, tag suggestions and note-grounded tutoring.
// ABOUTME: Prompts and fallback rules for each AI feature.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/neonotes/internal/models"
)

// Turn is one message of a tutoring conversation.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Summarize condenses note content into a few markdown bullet points.
func (c *Client) Summarize(ctx context.Context, text string) string {
	if !c.Configured() {
		return MsgNotConfigured
	}
	temp := 0.3
	out, err := c.generate(ctx, generateRequest{
		Contents: []content{userTurn(
			"Summarize the following study note into 3-4 concise, easy-to-read bullet points. Use markdown formatting. \n\nContent:\n" + text,
		)},
		GenerationConfig: &generationConfig{Temperature: &temp},
	})
	if err != nil {
		c.logger.Error("summarize failed", "err", err)
		return MsgSummaryError
	}
	if strings.TrimSpace(out) == "" {
		return MsgNoSummary
	}
	return out
}

// SuggestTags proposes tags for a note. Any failure yields an empty list.
func (c *Client) SuggestTags(ctx context.Context, title, description string) []string {
	if !c.Configured() {
		return []string{}
	}
	out, err := c.generate(ctx, generateRequest{
		Contents: []content{userTurn(fmt.Sprintf(
			"Generate 5 relevant, single-word or two-word tags for a study note with the title %q and description %q. Return JSON only.",
			title, description,
		))},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &schema{
				Type: "OBJECT",
				Properties: map[string]schema{
					"tags": {Type: "ARRAY", Items: &schema{Type: "STRING"}},
				},
			},
		},
	})
	if err != nil {
		c.logger.Error("tag suggestion failed", "err", err)
		return []string{}
	}

	var parsed struct {
		Tags []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		c.logger.Warn("tag suggestion unreadable", "err", err)
		return []string{}
	}
	return models.MergeTags(nil, parsed.Tags...)
}

// Chat answers a question about a note. Earlier turns are sent as
// conversation history; the note content rides along with the question.
func (c *Client) Chat(ctx context.Context, noteContent string, history []Turn, question string) string {
	if !c.Configured() {
		return MsgNotConfigured
	}
	contents := make([]content, 0, len(history)+1)
	for _, h := range history {
		role := "model"
		if h.Role == "user" {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: h.Text}}})
	}
	contents = append(contents, userTurn(fmt.Sprintf(
		"You are a helpful AI tutor. Use the following note content as your primary source of truth.\n\nNote Content:\n%s\n\nStudent Question: %s\n\nAnswer thoroughly but concisely.",
		noteContent, question,
	)))

	out, err := c.generate(ctx, generateRequest{Contents: contents})
	if err != nil {
		c.logger.Error("chat failed", "err", err)
		return MsgChatError
	}
	if strings.TrimSpace(out) == "" {
		return MsgNoAnswer
	}
	return out
}
