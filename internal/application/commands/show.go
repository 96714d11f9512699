package commands

import (
	"encoding/json"
	"fmt"

	"resumedit/internal/application"
	"resumedit/internal/domain"
)

// ShowCommand renders the whole current document as indented JSON. Unlike
// export it is available in any mode and writes nothing.
type ShowCommand struct {
	store DocumentStore
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(store DocumentStore) *ShowCommand {
	return &ShowCommand{store: store}
}

// Execute returns the document JSON
func (c *ShowCommand) Execute() ([]byte, error) {
	return application.ExportSnapshot(c.store.Current())
}

// GetFieldResult contains the value at a path
type GetFieldResult struct {
	Path  domain.Path
	Kind  domain.Kind
	Value any
	Text  string
}

// GetFieldCommand reads the value at a document path
type GetFieldCommand struct {
	store DocumentStore
	Path  string
}

// NewGetFieldCommand creates a new GetFieldCommand
func NewGetFieldCommand(store DocumentStore, path string) *GetFieldCommand {
	return &GetFieldCommand{store: store, Path: path}
}

// Execute looks up the value and formats it for display
func (c *GetFieldCommand) Execute() (*GetFieldResult, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}

	path, err := domain.ParsePath(c.Path)
	if err != nil {
		return nil, err
	}
	kind, err := domain.KindOf(path)
	if err != nil {
		return nil, err
	}
	value, err := domain.Get(c.store.Current(), path)
	if err != nil {
		return nil, err
	}

	text, err := FormatValue(kind, value)
	if err != nil {
		return nil, err
	}

	return &GetFieldResult{
		Path:  path,
		Kind:  kind,
		Value: value,
		Text:  text,
	}, nil
}

// FormatValue renders a value in the same text form DecodeValue accepts
func FormatValue(kind domain.Kind, value any) (string, error) {
	switch kind {
	case domain.KindText, domain.KindMultiline:
		if s, ok := value.(string); ok {
			return s, nil
		}
	case domain.KindTags:
		if tags, ok := value.([]string); ok {
			return domain.FormatTags(tags), nil
		}
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format value: %w", err)
	}
	return string(data), nil
}
