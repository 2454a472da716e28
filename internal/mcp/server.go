package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/traindelay/internal/render"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the dashboard pages as tools.
type Server struct {
	renderer *render.Renderer
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server backed by renderer.
func NewServer(renderer *render.Renderer) *Server {
	s := &Server{renderer: renderer}

	s.mcp = server.NewMCPServer(
		"traindelay",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPagesTool, s.handleListPages)
	s.mcp.AddTool(getPageTool, s.handleGetPage)
	s.mcp.AddTool(getOverviewTool, s.handleGetOverview)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
