// ABOUTME: MCP resources for exposing notes as readable resources.
// ABOUTME: Allows AI agents to access note content via URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIPrefix = "neonotes://note/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: noteURIPrefix + "{id}",
			Name:        "Note",
			Description: "Access individual study notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id, ok := strings.CutPrefix(req.Params.URI, noteURIPrefix)
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	note, err := s.state.Find(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", note.Title))
	if note.Description != "" {
		sb.WriteString(fmt.Sprintf("_%s_\n\n", note.Description))
	}
	sb.WriteString(fmt.Sprintf("**Author:** %s  \n", note.Author.Name))
	sb.WriteString(fmt.Sprintf("**Course:** %s (%s, %s)  \n", note.Course, note.Subject, note.Year))
	if len(note.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("**Tags:** %s\n", strings.Join(note.Tags, ", ")))
	}
	sb.WriteString("\n")
	sb.WriteString(note.Content)
	sb.WriteString("\n")

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     sb.String(),
			},
		},
	}, nil
}
