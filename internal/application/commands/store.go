package commands

import (
	"context"

	"resumedit/internal/application"
	"resumedit/internal/domain"
)

// DocumentStore is the part of application.Store the commands drive
type DocumentStore interface {
	Current() domain.Document
	Mode() application.Mode
	ToggleEditMode() application.Mode
	ApplyEdit(ctx context.Context, path domain.Path, value any) (domain.Document, error)
	ApplyEntryEdit(ctx context.Context, section domain.Section, index int, field string, value any) (domain.Document, error)
	AddEntry(ctx context.Context, section domain.Section) (domain.Document, error)
	RemoveEntry(ctx context.Context, section domain.Section, index int) (domain.Document, error)
	ResetToDefault(ctx context.Context) (domain.Document, error)
	ExportSnapshot() ([]byte, error)
}

var _ DocumentStore = (*application.Store)(nil)
