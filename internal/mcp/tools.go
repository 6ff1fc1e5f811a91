// ABOUTME: MCP tools for browsing, liking, downloading and studying notes.
// ABOUTME: Maps CLI functionality to MCP tool interface.

package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/neonotes/internal/ai"
	"github.com/harper/neonotes/internal/app"
	"github.com/harper/neonotes/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// list_notes
	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, optionally filtered by a title/tag query or author",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {"type": "string", "description": "Case-insensitive match against title or tags"},
				"author_id": {"type": "string", "description": "Only notes by this author"},
				"sort": {"type": "string", "enum": ["", "recent", "popular"], "description": "Optional ordering"},
				"limit": {"type": "integer", "description": "Max results", "default": 20}
			}
		}`),
	}, s.handleListNotes)

	// get_note
	s.server.AddTool(&mcp.Tool{
		Name:        "get_note",
		Description: "Get a note by ID or ID prefix, including its content and comments",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetNote)

	// like_note
	s.server.AddTool(&mcp.Tool{
		Name:        "like_note",
		Description: "Toggle the like on a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleLikeNote)

	// download_note
	s.server.AddTool(&mcp.Tool{
		Name:        "download_note",
		Description: "Download a note's file (or its text) and count the download",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleDownloadNote)

	// add_comment
	s.server.AddTool(&mcp.Tool{
		Name:        "add_comment",
		Description: "Post a comment on a note as the signed-in user",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"text": {"type": "string", "description": "Comment text"}
			},
			"required": ["id", "text"]
		}`),
	}, s.handleAddComment)

	// upload_note
	s.server.AddTool(&mcp.Tool{
		Name:        "upload_note",
		Description: "Publish a new note as the signed-in user",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"description": {"type": "string", "description": "Short description"},
				"content": {"type": "string", "description": "Note text"},
				"course": {"type": "string"},
				"year": {"type": "string"},
				"subject": {"type": "string"},
				"tags": {"type": "array", "items": {"type": "string"}},
				"price": {"type": "number", "description": "Set to make the note premium"}
			},
			"required": ["title"]
		}`),
	}, s.handleUploadNote)

	// summarize_note
	s.server.AddTool(&mcp.Tool{
		Name:        "summarize_note",
		Description: "Summarize a note into a few bullet points with Gemini",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleSummarizeNote)

	// suggest_tags
	s.server.AddTool(&mcp.Tool{
		Name:        "suggest_tags",
		Description: "Suggest tags for a note title and description",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"description": {"type": "string"}
			},
			"required": ["title"]
		}`),
	}, s.handleSuggestTags)

	// chat_note
	s.server.AddTool(&mcp.Tool{
		Name:        "chat_note",
		Description: "Ask the AI tutor a question about a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"question": {"type": "string"},
				"history": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"role": {"type": "string", "enum": ["user", "model"]},
							"text": {"type": "string"}
						}
					}
				}
			},
			"required": ["id", "question"]
		}`),
	}, s.handleChatNote)

	// whoami
	s.server.AddTool(&mcp.Tool{
		Name:        "whoami",
		Description: "Show the signed-in user",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleWhoami)
}

// noteSummary is a note without its content, comments or file payload.
type noteSummary struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Course    string   `json:"course"`
	Tags      []string `json:"tags"`
	Likes     int      `json:"likes"`
	Downloads int      `json:"downloads"`
	Liked     bool     `json:"liked"`
	IsPremium bool     `json:"isPremium"`
	Price     *float64 `json:"price,omitempty"`
	CreatedAt string   `json:"createdAt"`
	HasFile   bool     `json:"hasFile"`
}

func (s *Server) summarize(n models.Note) noteSummary {
	return noteSummary{
		ID:        n.ID,
		Title:     n.Title,
		Author:    n.Author.Name,
		Course:    n.Course,
		Tags:      n.Tags,
		Likes:     n.Likes,
		Downloads: n.Downloads,
		Liked:     s.state.IsLiked(n.ID),
		IsPremium: n.IsPremium,
		Price:     n.Price,
		CreatedAt: n.CreatedAt,
		HasFile:   n.HasFile() || n.FileName != "",
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return textResult(string(data))
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Query    string `json:"query"`
		AuthorID string `json:"author_id"`
		Sort     string `json:"sort"`
		Limit    int    `json:"limit"`
	}
	params.Limit = 20 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	notes, err := s.state.Browse(app.BrowseFilter{
		Query:    params.Query,
		AuthorID: params.AuthorID,
		Sort:     params.Sort,
		Limit:    params.Limit,
	})
	if err != nil {
		return errorResult("%v", err), nil
	}

	out := make([]noteSummary, len(notes))
	for i, n := range notes {
		out[i] = s.summarize(n)
	}
	return jsonResult(out), nil
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, err := s.state.Find(params.ID)
	if err != nil {
		return errorResult("failed to get note: %v", err), nil
	}
	note.FileData = ""

	return jsonResult(struct {
		models.Note
		Liked bool `json:"liked"`
	}{note, s.state.IsLiked(note.ID)}), nil
}

func (s *Server) handleLikeNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, err := s.state.Find(params.ID)
	if err != nil {
		return errorResult("failed to like note: %v", err), nil
	}
	liked, err := s.state.ToggleLike(ctx, note.ID)
	if err != nil {
		return errorResult("failed to like note: %v", err), nil
	}
	updated, _ := s.state.Find(note.ID)

	verb := "Unliked"
	if liked {
		verb = "Liked"
	}
	return textResult(fmt.Sprintf("%s %s (%d likes)", verb, note.ID, updated.Likes)), nil
}

func (s *Server) handleDownloadNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	file, err := s.state.Download(ctx, params.ID)
	if err != nil {
		return errorResult("failed to download note: %v", err), nil
	}

	result := map[string]any{
		"filename": file.Name,
		"mimeType": file.MimeType,
		"size":     len(file.Data),
	}
	if strings.HasPrefix(file.MimeType, "text/") {
		result["text"] = string(file.Data)
	} else {
		result["data"] = base64.StdEncoding.EncodeToString(file.Data)
	}
	return jsonResult(result), nil
}

func (s *Server) handleAddComment(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	c, err := s.state.PostComment(ctx, params.ID, params.Text)
	if err != nil {
		return errorResult("failed to post comment: %v", err), nil
	}
	return textResult(fmt.Sprintf("Posted comment %s as %s", c.ID, c.UserName)), nil
}

func (s *Server) handleUploadNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Content     string   `json:"content"`
		Course      string   `json:"course"`
		Year        string   `json:"year"`
		Subject     string   `json:"subject"`
		Tags        []string `json:"tags"`
		Price       *float64 `json:"price"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Title) == "" {
		return errorResult("note title cannot be empty"), nil
	}

	draft := app.Draft{
		Title:       params.Title,
		Description: params.Description,
		Content:     params.Content,
		Course:      params.Course,
		Year:        params.Year,
		Subject:     params.Subject,
		Tags:        params.Tags,
	}
	if params.Price != nil {
		draft.IsPremium = true
		draft.Price = *params.Price
	}

	note, err := s.state.Upload(ctx, draft)
	if err != nil {
		return errorResult("failed to upload note: %v", err), nil
	}
	return textResult(fmt.Sprintf("Created note %s", note.ID)), nil
}

func (s *Server) handleSummarizeNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	note, err := s.state.Find(params.ID)
	if err != nil {
		return errorResult("failed to get note: %v", err), nil
	}
	return textResult(s.assistant.Summarize(ctx, note.Content)), nil
}

func (s *Server) handleSuggestTags(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	return jsonResult(s.assistant.SuggestTags(ctx, params.Title, params.Description)), nil
}

func (s *Server) handleChatNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID       string `json:"id"`
		Question string `json:"question"`
		History  []struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"history"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	if strings.TrimSpace(params.Question) == "" {
		return errorResult("question cannot be empty"), nil
	}
	note, err := s.state.Find(params.ID)
	if err != nil {
		return errorResult("failed to get note: %v", err), nil
	}

	history := make([]ai.Turn, len(params.History))
	for i, h := range params.History {
		history[i] = ai.Turn{Role: h.Role, Text: h.Text}
	}
	return textResult(s.assistant.Chat(ctx, note.Content, history, params.Question)), nil
}

func (s *Server) handleWhoami(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user := s.state.CurrentUser()
	if user == nil {
		return textResult("Not signed in"), nil
	}
	return jsonResult(user), nil
}
