package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"drafts/internal/application/commands"
	"drafts/internal/domain"
	"drafts/internal/ports"
)

// RegisterTools adds the drafts tools to the MCP server.
func RegisterTools(s *server.MCPServer, repo ports.DraftRepository, postsDir string) {
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(publishTool(), publishHandler(repo, postsDir, time.Now))
}

// --- list_drafts ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_drafts",
		mcp.WithDescription("List every file in the drafts directory, recursively, in walk order. The first line is the file count."),
	)
}

func listHandler(repo ports.DraftRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listing, err := commands.NewListDraftsCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(listing.String()), nil
	}
}

// --- publish_draft ---

func publishTool() mcp.Tool {
	return mcp.NewTool("publish_draft",
		mcp.WithDescription("Move a draft into the posts directory as <date>-<name>, rewriting its front matter date."),
		mcp.WithString("path",
			mcp.Description("Draft path as printed by list_drafts"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("Publish date as YYYY-MM-DD. Defaults to today."),
		),
	)
}

func publishHandler(repo ports.DraftRepository, postsDir string, now func() time.Time) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		day := now()
		if s := req.GetString("date", ""); s != "" {
			parsed, err := domain.ParseDate(s)
			if err != nil {
				return toolError(fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s))
			}
			day = parsed
		}

		result, err := commands.NewPublishDraftCommand(repo, path, postsDir, day).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
