package application

import "resumedit/internal/domain"

// Re-export domain types for use by adapters
type (
	Document  = domain.Document
	Path      = domain.Path
	Section   = domain.Section
	FieldSpec = domain.FieldSpec
	Kind      = domain.Kind
)

// Mode is the state of the edit-mode state machine
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// ParsePath validates a dotted document path
func ParsePath(s string) (Path, error) {
	return domain.ParsePath(s)
}

// ParseSection validates a list section name
func ParseSection(s string) (Section, error) {
	return domain.ParseSection(s)
}
