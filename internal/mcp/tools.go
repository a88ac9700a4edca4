package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchActivityTool defines the search_activity MCP tool.
var searchActivityTool = mcp.NewTool("search_activity",
	mcp.WithDescription("Search team activity profiles semantically. Returns task and employee profile fragments matching the query."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language search query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
	mcp.WithString("cluster_type",
		mcp.Description("Restrict results to one profile kind"),
		mcp.Enum("task", "employee"),
	),
)

// askTeamTool defines the ask_team MCP tool.
var askTeamTool = mcp.NewTool("ask_team",
	mcp.WithDescription("Ask a question about the team's work. Retrieves relevant profiles and generates an answer with an LLM."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question to answer"),
	),
	mcp.WithString("mode",
		mcp.Description("Answer mode: profile uses named employee profiles, anonymous uses task profiles only (default profile)"),
		mcp.Enum("profile", "anonymous"),
	),
)

// getTeamStatsTool defines the get_team_stats MCP tool.
var getTeamStatsTool = mcp.NewTool("get_team_stats",
	mcp.WithDescription("Get the generated team activity report with totals, top contributors, roles, collaboration, and skills."),
)
