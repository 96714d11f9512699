package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"resumedit/internal/domain"
)

// Store owns the current document and the edit mode. Every mutation computes
// a new document through the path mutator, replaces the current one and
// writes it through the persistence layer before returning. Mutations are
// serialized, so writes reach storage in the order they were applied.
type Store struct {
	mu          sync.Mutex
	persistence *Persistence
	logger      logrus.FieldLogger
	current     domain.Document
	mode        Mode
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithInitialMode sets the mode the store starts in. Headless front ends with
// no viewing surface start in ModeEditing.
func WithInitialMode(mode Mode) StoreOption {
	return func(s *Store) {
		s.mode = mode
	}
}

// NewStore creates a store holding the default document in ModeViewing
func NewStore(persistence *Persistence, logger logrus.FieldLogger, opts ...StoreOption) *Store {
	s := &Store{
		persistence: persistence,
		logger:      logger,
		current:     domain.Default(),
		mode:        ModeViewing,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the current document with the persisted one
func (s *Store) Load(ctx context.Context) domain.Document {
	doc := s.persistence.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = doc
	return doc
}

// Current returns the current document
func (s *Store) Current() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Mode returns the current edit mode
func (s *Store) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// ToggleEditMode flips between viewing and editing. The document is untouched.
func (s *Store) ToggleEditMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeEditing {
		s.mode = ModeViewing
	} else {
		s.mode = ModeEditing
	}
	return s.mode
}

// ApplyEdit replaces the value at path and persists the result. On error the
// current document is left as it was.
func (s *Store) ApplyEdit(ctx context.Context, path domain.Path, value any) (domain.Document, error) {
	return s.mutate(ctx, func(doc domain.Document) (domain.Document, error) {
		return domain.Update(doc, path, value)
	})
}

// ApplyEntryEdit replaces one field of a list element and persists the result
func (s *Store) ApplyEntryEdit(ctx context.Context, section domain.Section, index int, field string, value any) (domain.Document, error) {
	return s.mutate(ctx, func(doc domain.Document) (domain.Document, error) {
		return domain.SetEntryField(doc, section, index, field, value)
	})
}

// AddEntry appends an empty element to section and persists the result
func (s *Store) AddEntry(ctx context.Context, section domain.Section) (domain.Document, error) {
	return s.mutate(ctx, func(doc domain.Document) (domain.Document, error) {
		return domain.AppendEntry(doc, section)
	})
}

// RemoveEntry deletes the element at index from section and persists the result
func (s *Store) RemoveEntry(ctx context.Context, section domain.Section, index int) (domain.Document, error) {
	return s.mutate(ctx, func(doc domain.Document) (domain.Document, error) {
		return domain.RemoveEntry(doc, section, index)
	})
}

// ResetToDefault drops the persisted document and restores the default.
// Only allowed while editing. When storage cannot be cleared the default is
// still installed in memory and a *StorageNotClearedError is returned along
// with it.
func (s *Store) ResetToDefault(ctx context.Context) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeEditing {
		return s.current, ErrNotEditing
	}

	doc, err := s.persistence.Reset(ctx)
	s.current = doc
	if err != nil {
		s.logger.WithError(err).Warn("reset could not clear storage")
		return doc, &StorageNotClearedError{Key: s.persistence.Key(), Cause: err}
	}
	return doc, nil
}

// ExportSnapshot serializes the current document. Only allowed while editing.
func (s *Store) ExportSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeEditing {
		return nil, ErrNotEditing
	}
	return ExportSnapshot(s.current)
}

func (s *Store) mutate(ctx context.Context, fn func(domain.Document) (domain.Document, error)) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(s.current)
	if err != nil {
		return s.current, err
	}
	s.current = updated

	if err := s.persistence.Save(ctx, updated); err != nil {
		s.logger.WithError(err).Warn("edit applied but not persisted")
	}
	return updated, nil
}
