package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for document mutations
var (
	ErrInvalidPath     = errors.New("invalid path")
	ErrPathNotFound    = errors.New("path not found")
	ErrValueType       = errors.New("value has wrong type")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownSection  = errors.New("unknown section")
	ErrMalformedValue  = errors.New("malformed value")
)

// PathError describes a failure to resolve a path against the document schema
type PathError struct {
	Path    string
	Segment string
	Err     error
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("%s %q", e.Err, e.Path)
	}
	return fmt.Sprintf("%s %q: no field %q", e.Err, e.Path, e.Segment)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ValueTypeError is returned when a value does not match the type a path holds
type ValueTypeError struct {
	Path Path
	Want string
	Got  string
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Want, e.Got)
}

func (e *ValueTypeError) Is(target error) bool {
	return target == ErrValueType
}
