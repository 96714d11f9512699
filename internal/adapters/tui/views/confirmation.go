package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/adapters/tui/styles"
	"resumedit/internal/application/commands"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel provides a base for confirmation-style views
type ConfirmationModel struct {
	ViewState
	Keys ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() ConfirmationModel {
	return ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// HandleKeyMsg processes key messages for confirmation views.
// Returns (handled, cmd) where handled is true if the key was processed.
func (m *ConfirmationModel) HandleKeyMsg(msg tea.KeyMsg, onConfirm, onCancel func() tea.Msg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		return true, func() tea.Msg { return onCancel() }
	case key.Matches(msg, m.Keys.Confirm):
		return true, func() tea.Msg { return onConfirm() }
	}
	return false, nil
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}

// ResetModel asks before discarding every edit
type ResetModel struct {
	ConfirmationModel
	store commands.DocumentStore
}

// NewResetModel creates a new reset confirmation view
func NewResetModel(store commands.DocumentStore) *ResetModel {
	return &ResetModel{
		ConfirmationModel: NewConfirmationModel(),
		store:             store,
	}
}

// Init initializes the reset view
func (m *ResetModel) Init() tea.Cmd {
	m.ClearMessage()
	return nil
}

// Update handles messages for the reset view
func (m *ResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		_, cmd := m.HandleKeyMsg(msg, m.reset, func() tea.Msg { return SwitchToResumeMsg{} })
		return m, cmd
	}
	return m, nil
}

func (m *ResetModel) reset() tea.Msg {
	result, err := commands.NewResetCommand(m.store, true).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return ResetDoneMsg{Message: result.Message, Warning: result.Warning != ""}
}

// View renders the reset confirmation
func (m *ResetModel) View() string {
	return NewViewBuilder().
		Title("Reset résumé").
		BlankLine().
		Line("Every edit will be discarded and the stored copy deleted.").
		Line(RenderMuted("The built-in résumé is restored. This cannot be undone.")).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(RenderConfirmPrompt("Reset to default?")).
		String()
}
