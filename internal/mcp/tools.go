package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPagesTool defines the list_pages MCP tool.
var listPagesTool = mcp.NewTool("list_pages",
	mcp.WithDescription("List the dashboard pages: the dataset overview and every precomputed train delay question."),
)

// getPageTool defines the get_page MCP tool.
var getPageTool = mcp.NewTool("get_page",
	mcp.WithDescription("Get one question page: the question, the plot status and the findings."),
	mcp.WithString("page_id",
		mcp.Required(),
		mcp.Description("Page identifier such as Q01, or Overview"),
	),
)

// getOverviewTool defines the get_overview MCP tool.
var getOverviewTool = mcp.NewTool("get_overview",
	mcp.WithDescription("Get the dataset overview: total record count and a preview of the first rows."),
)
