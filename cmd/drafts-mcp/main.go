package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"drafts/internal/adapters/filesystem"
	mcpadapter "drafts/internal/adapters/mcp"
	"drafts/internal/config"
	"drafts/internal/logging"
)

func main() {
	dirFlag := flag.String("dir", config.DraftsDir(), "path to the drafts directory")
	postsFlag := flag.String("posts", config.PostsDir(), "path to the posts directory")
	logFlag := flag.String("log-output", "stderr", "log destination (stdout is reserved for the protocol)")
	flag.Parse()

	if *logFlag == "stdout" {
		log.Fatal("drafts-mcp: stdout carries the MCP protocol, choose another --log-output")
	}
	if err := logging.Init(logging.Config{Level: "info", Format: "json", OutputPath: *logFlag}); err != nil {
		log.Fatalf("drafts-mcp: %v", err)
	}
	defer logging.Sync()

	repo := filesystem.NewRepository(*dirFlag)

	mcpServer := server.NewMCPServer(
		"drafts-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check: returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, repo, *postsFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("drafts-mcp: %v", err)
	}
}
