// ABOUTME: MCP server for neonotes integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts for browsing and studying notes.

package mcp

import (
	"context"

	"github.com/harper/neonotes/internal/ai"
	"github.com/harper/neonotes/internal/app"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Assistant is the AI surface the server exposes as tools.
type Assistant interface {
	Configured() bool
	Summarize(ctx context.Context, text string) string
	SuggestTags(ctx context.Context, title, description string) []string
	Chat(ctx context.Context, noteContent string, history []ai.Turn, question string) string
}

type Server struct {
	server    *mcp.Server
	state     *app.State
	assistant Assistant
}

func NewServer(state *app.State, assistant Assistant) *Server {
	s := &Server{state: state, assistant: assistant}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "neonotes",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
