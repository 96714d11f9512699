package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/application/commands"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

type errMsg struct {
	err error
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err}
	}
}

// Messages for view switching
type SwitchToFieldEditMsg struct {
	Ref commands.FieldRef
}

type SwitchToResetMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToResumeMsg struct{}

// FieldSavedMsg reports a committed field edit
type FieldSavedMsg struct {
	Key     string
	Message string
}

// ResetDoneMsg reports a completed reset. Warning marks a reset that only
// took effect in memory.
type ResetDoneMsg struct {
	Message string
	Warning bool
}

// OpenEditorMsg asks for text to be edited in the external editor
type OpenEditorMsg struct {
	Text string
}
