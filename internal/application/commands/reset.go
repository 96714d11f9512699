package commands

import (
	"context"
	"errors"
	"fmt"

	"resumedit/internal/application"
	"resumedit/internal/domain"
)

// ResetResult contains the document after a reset. Warning is set when the
// stored copy survived the reset.
type ResetResult struct {
	Document domain.Document
	Warning  string
	Message  string
}

// ResetCommand discards the stored document and restores the default one.
// It refuses to run unless Confirmed is set.
type ResetCommand struct {
	store     DocumentStore
	Confirmed bool
}

// NewResetCommand creates a new ResetCommand
func NewResetCommand(store DocumentStore, confirmed bool) *ResetCommand {
	return &ResetCommand{store: store, Confirmed: confirmed}
}

// Validate checks that the reset was confirmed
func (c *ResetCommand) Validate() error {
	if !c.Confirmed {
		return application.ErrResetNotConfirmed
	}
	return nil
}

// Execute runs the reset
func (c *ResetCommand) Execute(ctx context.Context) (*ResetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.store.ResetToDefault(ctx)
	if errors.Is(err, application.ErrStorageNotCleared) {
		return &ResetResult{
			Document: doc,
			Warning:  err.Error(),
			Message:  fmt.Sprintf("Reset to default résumé in this session only: %v", err),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reset: %w", err)
	}

	return &ResetResult{
		Document: doc,
		Message:  "Reset to default résumé",
	}, nil
}
