package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/teamlens/teamlens/internal/rag"
	"github.com/teamlens/teamlens/internal/vectordb"
)

// handleSearchActivity performs semantic search over the profile store.
func (s *Server) handleSearchActivity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	var filter *vectordb.SearchFilter
	if typeStr := request.GetString("cluster_type", ""); typeStr != "" {
		clusterType := vectordb.ClusterType(typeStr)
		filter = &vectordb.SearchFilter{ClusterType: &clusterType}
	}

	results, err := s.store.Search(ctx, query, limit, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText("No results found. The snapshot may not be ingested yet. Run `teamlens ingest` first."), nil
	}

	return mcp.NewToolResultText(vectordb.FormatResults(results)), nil
}

// handleAskTeam answers a question through the retrieval pipeline.
func (s *Server) handleAskTeam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	mode := rag.ModeProfile
	if modeStr := request.GetString("mode", ""); modeStr != "" {
		mode, err = rag.ParseMode(modeStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid mode: %v", err)), nil
		}
	}

	answer, err := s.engine.Answer(ctx, question, mode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answer failed: %v", err)), nil
	}

	return mcp.NewToolResultText(answer.Text), nil
}

// handleGetTeamStats returns the generated team activity report.
func (s *Server) handleGetTeamStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := os.ReadFile(s.reportPath)
	if err != nil {
		if os.IsNotExist(err) {
			return mcp.NewToolResultError(
				"No team report found. Run `teamlens report` to generate it.",
			), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to read report: %v", err)), nil
	}

	return mcp.NewToolResultText(string(content)), nil
}
