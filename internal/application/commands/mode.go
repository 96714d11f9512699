package commands

import (
	"fmt"

	"resumedit/internal/application"
)

// ToggleModeResult contains the mode after a toggle
type ToggleModeResult struct {
	Mode    application.Mode
	Message string
}

// ToggleModeCommand switches between viewing and editing
type ToggleModeCommand struct {
	store DocumentStore
}

// NewToggleModeCommand creates a new ToggleModeCommand
func NewToggleModeCommand(store DocumentStore) *ToggleModeCommand {
	return &ToggleModeCommand{store: store}
}

// Execute flips the mode
func (c *ToggleModeCommand) Execute() *ToggleModeResult {
	mode := c.store.ToggleEditMode()
	return &ToggleModeResult{
		Mode:    mode,
		Message: fmt.Sprintf("Switched to %s mode", mode),
	}
}
