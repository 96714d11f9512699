package commands

import (
	"context"
	"fmt"

	"resumedit/internal/application"
	"resumedit/internal/domain"
)

// SetFieldResult contains the result of a field update
type SetFieldResult struct {
	Path     domain.Path
	Document domain.Document
	Message  string
}

// SetFieldCommand replaces the value at a document path with text input
type SetFieldCommand struct {
	store DocumentStore
	Path  string
	Value string
}

// NewSetFieldCommand creates a new SetFieldCommand
func NewSetFieldCommand(store DocumentStore, path, value string) *SetFieldCommand {
	return &SetFieldCommand{
		store: store,
		Path:  path,
		Value: value,
	}
}

// Validate checks that the path exists in the schema
func (c *SetFieldCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if _, err := domain.ParsePath(c.Path); err != nil {
		return &application.ValidationError{
			Field:   "path",
			Message: err.Error(),
			Cause:   err,
		}
	}
	return nil
}

// Execute decodes the value for the path and applies it
func (c *SetFieldCommand) Execute(ctx context.Context) (*SetFieldResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	path := domain.Path(c.Path)
	value, err := domain.DecodeValue(path, c.Value)
	if err != nil {
		return nil, err
	}

	doc, err := c.store.ApplyEdit(ctx, path, value)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", path, err)
	}

	return &SetFieldResult{
		Path:     path,
		Document: doc,
		Message:  fmt.Sprintf("Updated %s", path),
	}, nil
}
