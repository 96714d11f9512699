package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "resumedit/internal/adapters/mcp"
	"resumedit/internal/application"
	"resumedit/internal/bootstrap"
	"resumedit/internal/config"
	"resumedit/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("resumedit-mcp: %v", err)
	}

	dataFlag := flag.String("data-dir", cfg.DataDir, "data directory")
	exportFlag := flag.String("export", cfg.ExportFile, "default export file")
	flag.Parse()
	cfg.DataDir = *dataFlag

	// stdout carries the protocol, logs go to stderr or the log file
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile, os.Stderr)
	if err != nil {
		log.Fatalf("resumedit-mcp: %v", err)
	}
	defer closeLog()

	// Tool calls never pass through a viewing surface
	rt, err := bootstrap.Open(context.Background(), cfg, logger, application.WithInitialMode(application.ModeEditing))
	if err != nil {
		log.Fatalf("resumedit-mcp: %v", err)
	}
	defer rt.Close()

	mcpServer := server.NewMCPServer(
		"resumedit-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	// The MCP server has no clipboard of its own; export returns the JSON instead
	mcpadapter.RegisterReadTools(mcpServer, rt.Store)
	mcpadapter.RegisterWriteTools(mcpServer, rt.Store, nil, *exportFlag)

	logger.WithField("data_dir", cfg.DataDir).Info("serving MCP over stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.WithError(err).Error("server stopped")
		os.Exit(1)
	}
}
