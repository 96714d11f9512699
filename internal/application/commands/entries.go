package commands

import (
	"context"
	"fmt"

	"resumedit/internal/application"
	"resumedit/internal/domain"
)

// EntryKey is the stable display key of one field of a list element, e.g. work[0].title
func EntryKey(section domain.Section, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", section, index, field)
}

func validateSection(name string) error {
	if err := application.ValidateRequired("section", name); err != nil {
		return err
	}
	if _, err := domain.ParseSection(name); err != nil {
		return &application.ValidationError{
			Field:   "section",
			Message: err.Error(),
			Cause:   err,
		}
	}
	return nil
}

// EntryResult contains the result of a list element operation
type EntryResult struct {
	Section  domain.Section
	Index    int
	Document domain.Document
	Message  string
}

// SetEntryFieldCommand replaces one field of a list element with text input
type SetEntryFieldCommand struct {
	store   DocumentStore
	Section string
	Index   int
	Field   string
	Value   string
}

// NewSetEntryFieldCommand creates a new SetEntryFieldCommand
func NewSetEntryFieldCommand(store DocumentStore, section string, index int, field, value string) *SetEntryFieldCommand {
	return &SetEntryFieldCommand{
		store:   store,
		Section: section,
		Index:   index,
		Field:   field,
		Value:   value,
	}
}

// Validate checks the section, index and field name
func (c *SetEntryFieldCommand) Validate() error {
	if err := validateSection(c.Section); err != nil {
		return err
	}
	if err := application.ValidateIndex("index", c.Index); err != nil {
		return err
	}
	return application.ValidateRequired("field", c.Field)
}

// Execute decodes the value for the field and applies it to the element
func (c *SetEntryFieldCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section := domain.Section(c.Section)
	value, err := domain.DecodeEntryValue(section, c.Field, c.Value)
	if err != nil {
		return nil, err
	}

	key := EntryKey(section, c.Index, c.Field)
	doc, err := c.store.ApplyEntryEdit(ctx, section, c.Index, c.Field, value)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", key, err)
	}

	return &EntryResult{
		Section:  section,
		Index:    c.Index,
		Document: doc,
		Message:  fmt.Sprintf("Updated %s", key),
	}, nil
}

// AddEntryCommand appends an empty element to a list section
type AddEntryCommand struct {
	store   DocumentStore
	Section string
}

// NewAddEntryCommand creates a new AddEntryCommand
func NewAddEntryCommand(store DocumentStore, section string) *AddEntryCommand {
	return &AddEntryCommand{store: store, Section: section}
}

// Validate checks the section name
func (c *AddEntryCommand) Validate() error {
	return validateSection(c.Section)
}

// Execute appends the element
func (c *AddEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section := domain.Section(c.Section)
	doc, err := c.store.AddEntry(ctx, section)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s entry: %w", section, err)
	}

	index := domain.EntryCount(doc, section) - 1
	return &EntryResult{
		Section:  section,
		Index:    index,
		Document: doc,
		Message:  fmt.Sprintf("Added %s[%d]", section, index),
	}, nil
}

// RemoveEntryCommand deletes one element of a list section
type RemoveEntryCommand struct {
	store   DocumentStore
	Section string
	Index   int
}

// NewRemoveEntryCommand creates a new RemoveEntryCommand
func NewRemoveEntryCommand(store DocumentStore, section string, index int) *RemoveEntryCommand {
	return &RemoveEntryCommand{store: store, Section: section, Index: index}
}

// Validate checks the section and index
func (c *RemoveEntryCommand) Validate() error {
	if err := validateSection(c.Section); err != nil {
		return err
	}
	return application.ValidateIndex("index", c.Index)
}

// Execute removes the element
func (c *RemoveEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	section := domain.Section(c.Section)
	doc, err := c.store.RemoveEntry(ctx, section, c.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to remove %s[%d]: %w", section, c.Index, err)
	}

	return &EntryResult{
		Section:  section,
		Index:    c.Index,
		Document: doc,
		Message:  fmt.Sprintf("Removed %s[%d]", section, c.Index),
	}, nil
}
