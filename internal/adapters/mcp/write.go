package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"resumedit/internal/application/commands"
	"resumedit/internal/domain"
	"resumedit/internal/ports"
)

// RegisterWriteTools adds the résumé editing tools to the MCP server. The
// store must be in editing mode for export and reset to succeed.
func RegisterWriteTools(s *server.MCPServer, store commands.DocumentStore, clipboard ports.Clipboard, exportPath string) {
	s.AddTool(setFieldTool(), setFieldHandler(store))
	s.AddTool(setEntryFieldTool(), setEntryFieldHandler(store))
	s.AddTool(addEntryTool(), addEntryHandler(store))
	s.AddTool(removeEntryTool(), removeEntryHandler(store))
	s.AddTool(exportTool(), exportHandler(store, clipboard, exportPath))
	s.AddTool(resetTool(), resetHandler(store))
}

func sectionNames() []string {
	names := make([]string, 0, len(domain.Sections()))
	for _, s := range domain.Sections() {
		names = append(names, string(s))
	}
	return names
}

// --- set_field ---

func setFieldTool() mcp.Tool {
	return mcp.NewTool("set_field",
		mcp.WithDescription("Replace the value at a dotted path. Text is taken verbatim, tag lists accept a comma separated list or a JSON array, lists and records must be JSON."),
		mcp.WithString("path",
			mcp.Description("Dotted path (e.g. summary, contact.tel, skills.tools)"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value"),
			mcp.Required(),
		),
	)
}

func setFieldHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		value := req.GetString("value", "")

		result, err := commands.NewSetFieldCommand(store, path, value).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_entry_field ---

func setEntryFieldTool() mcp.Tool {
	return mcp.NewTool("set_entry_field",
		mcp.WithDescription("Replace one field of a list element (e.g. work[0].title)."),
		mcp.WithString("section",
			mcp.Description("List section"),
			mcp.Enum(sectionNames()...),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Zero-based element index"),
			mcp.Required(),
		),
		mcp.WithString("field",
			mcp.Description("Field name (e.g. title, description, badges, link.href)"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New value"),
			mcp.Required(),
		),
	)
}

func setEntryFieldHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetEntryFieldCommand(store,
			req.GetString("section", ""),
			req.GetInt("index", -1),
			req.GetString("field", ""),
			req.GetString("value", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_entry ---

func addEntryTool() mcp.Tool {
	return mcp.NewTool("add_entry",
		mcp.WithDescription("Append an empty element to a list section and return its index."),
		mcp.WithString("section",
			mcp.Description("List section"),
			mcp.Enum(sectionNames()...),
			mcp.Required(),
		),
	)
}

func addEntryHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewAddEntryCommand(store, req.GetString("section", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_entry ---

func removeEntryTool() mcp.Tool {
	return mcp.NewTool("remove_entry",
		mcp.WithDescription("Remove the element at index from a list section. Later elements shift down by one."),
		mcp.WithString("section",
			mcp.Description("List section"),
			mcp.Enum(sectionNames()...),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("Zero-based element index"),
			mcp.Required(),
		),
	)
}

func removeEntryHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRemoveEntryCommand(store, req.GetString("section", ""), req.GetInt("index", -1))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- export_resume ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export_resume",
		mcp.WithDescription("Write the résumé as indented JSON to a file and return the JSON."),
		mcp.WithString("output",
			mcp.Description("Output file. Defaults to the configured export file."),
		),
	)
}

func exportHandler(store commands.DocumentStore, clipboard ports.Clipboard, exportPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		output := req.GetString("output", exportPath)

		result, err := commands.NewExportCommand(store, clipboard, output).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", result.Message, result.Data)), nil
	}
}

// --- reset_resume ---

func resetTool() mcp.Tool {
	return mcp.NewTool("reset_resume",
		mcp.WithDescription("Discard the stored résumé and restore the default one. This cannot be undone."),
		mcp.WithBoolean("confirm",
			mcp.Description("Must be true to perform the reset"),
			mcp.Required(),
		),
	)
}

func resetHandler(store commands.DocumentStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewResetCommand(store, req.GetBool("confirm", false)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
