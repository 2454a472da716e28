package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/traindelay/internal/registry"
	"github.com/ziadkadry99/traindelay/internal/render"
)

// handleListPages lists every page with its question.
func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reg := s.renderer.Registry()

	var sb strings.Builder
	for _, id := range s.renderer.Pages() {
		if e, err := reg.Lookup(id); err == nil {
			sb.WriteString(fmt.Sprintf("%s: %s\n", id, e.Question))
		} else {
			sb.WriteString(fmt.Sprintf("%s: dataset overview\n", id))
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetPage renders one page as text.
func (s *Server) handleGetPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("page_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: page_id"), nil
	}
	return s.pageResult(ctx, strings.TrimSpace(id))
}

// handleGetOverview renders the dataset overview as text.
func (s *Server) handleGetOverview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.pageResult(ctx, registry.OverviewPage)
}

func (s *Server) pageResult(ctx context.Context, id string) (*mcp.CallToolResult, error) {
	page, err := s.renderer.Page(ctx, id)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownPage) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"No page %q. Use list_pages to see the available pages.", id,
			)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to render page: %v", err)), nil
	}

	var sb strings.Builder
	if err := render.WriteText(&sb, page); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render page: %v", err)), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}
