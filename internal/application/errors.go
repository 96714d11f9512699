package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotEditing        = errors.New("not in editing mode")
	ErrResetNotConfirmed = errors.New("reset not confirmed")
	ErrPersistence       = errors.New("persisted document unusable")
	ErrExport            = errors.New("export failed")
	ErrStorageNotCleared = errors.New("stored document not removed")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// PersistenceParseError reports a stored document that could not be read back.
// It never leaves the persistence boundary except in logs.
type PersistenceParseError struct {
	Key   string
	Cause error
}

func (e *PersistenceParseError) Error() string {
	return fmt.Sprintf("cannot load %q: %v", e.Key, e.Cause)
}

func (e *PersistenceParseError) Unwrap() error {
	return e.Cause
}

func (e *PersistenceParseError) Is(target error) bool {
	return target == ErrPersistence
}

// ExportSerializationError reports a document that could not be serialized for export
type ExportSerializationError struct {
	Cause error
}

func (e *ExportSerializationError) Error() string {
	return fmt.Sprintf("cannot serialize document: %v", e.Cause)
}

func (e *ExportSerializationError) Unwrap() error {
	return e.Cause
}

func (e *ExportSerializationError) Is(target error) bool {
	return target == ErrExport
}

// StorageNotClearedError reports a reset that replaced the document in memory
// but could not remove the persisted copy, which comes back on the next load
type StorageNotClearedError struct {
	Key   string
	Cause error
}

func (e *StorageNotClearedError) Error() string {
	return fmt.Sprintf("stored document %q was not removed: %v", e.Key, e.Cause)
}

func (e *StorageNotClearedError) Unwrap() error {
	return e.Cause
}

func (e *StorageNotClearedError) Is(target error) bool {
	return target == ErrStorageNotCleared
}
