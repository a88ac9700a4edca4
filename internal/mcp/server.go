// Package mcp exposes team activity profiles to AI agents over the
// Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/teamlens/teamlens/internal/rag"
	"github.com/teamlens/teamlens/internal/vectordb"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes team activity tools.
type Server struct {
	store      vectordb.VectorStore
	engine     *rag.Engine
	reportPath string
	mcp        *server.MCPServer
}

// NewServer creates a new MCP server. reportPath points at the generated
// markdown team report, served by the get_team_stats tool.
func NewServer(store vectordb.VectorStore, engine *rag.Engine, reportPath string) *Server {
	s := &Server{
		store:      store,
		engine:     engine,
		reportPath: reportPath,
	}

	s.mcp = server.NewMCPServer(
		"teamlens",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchActivityTool, s.handleSearchActivity)
	s.mcp.AddTool(askTeamTool, s.handleAskTeam)
	s.mcp.AddTool(getTeamStatsTool, s.handleGetTeamStats)
}

// Serve starts the MCP server on stdio. Stdout carries MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
