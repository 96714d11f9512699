package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"resumedit/internal/ports"
)

// DefaultExportFile is the file name used when no output path is given
const DefaultExportFile = "resume-data.json"

// ExportResult contains the exported JSON and where it went
type ExportResult struct {
	Data    []byte
	Path    string
	Copied  bool
	Message string
}

// ExportCommand serializes the current document and writes it to a file.
// When a clipboard is set the JSON is copied there as well.
type ExportCommand struct {
	store     DocumentStore
	clipboard ports.Clipboard
	Output    string
}

// NewExportCommand creates a new ExportCommand. clipboard may be nil.
func NewExportCommand(store DocumentStore, clipboard ports.Clipboard, output string) *ExportCommand {
	return &ExportCommand{
		store:     store,
		clipboard: clipboard,
		Output:    output,
	}
}

// Execute runs the export. A clipboard failure does not fail the export.
func (c *ExportCommand) Execute(_ context.Context) (*ExportResult, error) {
	data, err := c.store.ExportSnapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}

	output := c.Output
	if output == "" {
		output = DefaultExportFile
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", output, err)
	}

	result := &ExportResult{
		Data:    data,
		Path:    output,
		Message: fmt.Sprintf("Exported to %s", output),
	}

	if c.clipboard != nil {
		if err := c.clipboard.WriteAll(string(data)); err == nil {
			result.Copied = true
			result.Message += " and copied to clipboard"
		}
	}

	return result, nil
}
