package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"resumedit/internal/application/commands"
)

// RegisterReadTools adds the read-only résumé tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store commands.DocumentStore) {
	s.AddTool(getResumeTool(), getResumeHandler(store))
	s.AddTool(getFieldTool(), getFieldHandler(store))
	s.AddTool(listPathsTool(), listPathsHandler(store))
}

// --- get_resume ---

func getResumeTool() mcp.Tool {
	return mcp.NewTool("get_resume",
		mcp.WithDescription("Return the whole résumé as indented JSON."),
	)
}

func getResumeHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := commands.NewShowCommand(store).Execute()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- get_field ---

func getFieldTool() mcp.Tool {
	return mcp.NewTool("get_field",
		mcp.WithDescription("Read one value of the résumé by its dotted path. Lists and records are returned as JSON, tags as a comma separated list."),
		mcp.WithString("path",
			mcp.Description("Dotted path (e.g. name, contact.email, skills.core, work)"),
			mcp.Required(),
		),
	)
}

func getFieldHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewGetFieldCommand(store, req.GetString("path", "")).Execute()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Text), nil
	}
}

// --- list_paths ---

func listPathsTool() mcp.Tool {
	return mcp.NewTool("list_paths",
		mcp.WithDescription("List every editable field with its key and kind. With a query, only fuzzy matches on key or value are returned, best match first."),
		mcp.WithString("query",
			mcp.Description("Optional filter of at least two characters"),
		),
	)
}

func listPathsHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		var fields []commands.FieldRef
		if query == "" {
			fields = commands.ListFields(store.Current())
		} else {
			for _, r := range commands.NewSearchCommand(store, query).Execute() {
				fields = append(fields, r.FieldRef)
			}
		}

		if len(fields) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, f := range fields {
			fmt.Fprintf(&sb, "%s  (%s)  %s\n", f.Key, f.Kind, firstLine(f.Text))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
