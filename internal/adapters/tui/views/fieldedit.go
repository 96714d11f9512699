package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/application/commands"
	"resumedit/internal/domain"
)

// FieldEditKeyMap defines key bindings for the field editor
type FieldEditKeyMap struct {
	Submit          key.Binding
	SubmitMultiline key.Binding
	Cancel          key.Binding
	External        key.Binding
}

var FieldEditKeys = FieldEditKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	SubmitMultiline: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	External: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "$EDITOR"),
	),
}

// FieldEditModel edits the value of one field. Single-line and tag fields use
// a text input, multi-line fields a textarea.
type FieldEditModel struct {
	ViewState
	store     commands.DocumentStore
	hasEditor bool
	ref       commands.FieldRef
	form      *InputForm
	area      textarea.Model
}

// NewFieldEditModel creates a new field editor
func NewFieldEditModel(store commands.DocumentStore, hasEditor bool) *FieldEditModel {
	return &FieldEditModel{
		store:     store,
		hasEditor: hasEditor,
		area:      newTextarea(),
	}
}

func newTextarea() textarea.Model {
	area := textarea.New()
	area.CharLimit = 0
	area.ShowLineNumbers = false
	area.Prompt = "│ "
	return area
}

// SetField loads ref into the editor
func (m *FieldEditModel) SetField(ref commands.FieldRef) {
	m.ref = ref
	m.ClearMessage()

	if m.multiline() {
		m.area = newTextarea()
		m.area.SetValue(ref.Text)
		m.area.Focus()
		m.resize()
		return
	}

	hint := ""
	if ref.Kind == domain.KindTags {
		hint = "Comma separated, e.g. Go, Docker, PostgreSQL"
	}
	m.form = NewInputForm(NewInputField(ref.Key, hint, ref.Text, m.Width-8))
}

// Ref returns the field being edited
func (m *FieldEditModel) Ref() commands.FieldRef {
	return m.ref
}

// Value returns the text currently in the editor
func (m *FieldEditModel) Value() string {
	if m.multiline() {
		return m.area.Value()
	}
	if m.form == nil {
		return ""
	}
	return m.form.Value(0)
}

// SetValue replaces the text in the editor, e.g. after an external edit
func (m *FieldEditModel) SetValue(text string) {
	if m.multiline() {
		m.area.SetValue(text)
		return
	}
	if m.form != nil {
		m.form.SetValue(0, text)
	}
}

func (m *FieldEditModel) multiline() bool {
	return m.ref.Kind == domain.KindMultiline
}

// SetSize updates the view dimensions
func (m *FieldEditModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.resize()
}

func (m *FieldEditModel) resize() {
	if m.Width > 8 {
		m.area.SetWidth(m.Width - 8)
	}
	if m.Height > 12 {
		m.area.SetHeight(m.Height - 12)
	}
}

// Init initializes the field editor
func (m *FieldEditModel) Init() tea.Cmd {
	if m.multiline() {
		return textarea.Blink
	}
	if m.form == nil {
		return nil
	}
	return m.form.Init()
}

// Update handles messages for the field editor
func (m *FieldEditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FieldEditKeys.Cancel):
			return m, func() tea.Msg { return SwitchToResumeMsg{} }

		case key.Matches(msg, FieldEditKeys.External):
			if !m.hasEditor {
				m.SetMessage("No external editor configured", true)
				return m, nil
			}
			text := m.Value()
			return m, func() tea.Msg { return OpenEditorMsg{Text: text} }

		case key.Matches(msg, FieldEditKeys.SubmitMultiline):
			return m, m.save(m.Value())

		case !m.multiline() && key.Matches(msg, FieldEditKeys.Submit):
			return m, m.save(m.Value())
		}
	}

	var cmd tea.Cmd
	if m.multiline() {
		m.area, cmd = m.area.Update(msg)
	} else if m.form != nil {
		_, cmd = m.form.Update(msg)
	}
	return m, cmd
}

func (m *FieldEditModel) save(value string) tea.Cmd {
	ref := m.ref
	return func() tea.Msg {
		_, message, err := commands.ApplyField(context.Background(), m.store, ref, value)
		if err != nil {
			return errMsg{err}
		}
		return FieldSavedMsg{Key: ref.Key, Message: message}
	}
}

// View renders the field editor
func (m *FieldEditModel) View() string {
	v := NewViewBuilder().
		Title("Edit " + m.ref.Key).
		Line(RenderMuted(m.ref.Kind.String() + " field")).
		BlankLine()

	if m.multiline() {
		v.Raw(m.area.View()).BlankLine().BlankLine()
	} else if m.form != nil {
		v.Raw(m.form.RenderField(0)).BlankLine().BlankLine()
	}

	v.Message(m.Message, m.MessageErr)

	submit := FieldEditKeys.Submit
	if m.multiline() {
		submit = FieldEditKeys.SubmitMultiline
	}
	if m.hasEditor {
		return v.Help(submit, FieldEditKeys.External, FieldEditKeys.Cancel).String()
	}
	return v.Help(submit, FieldEditKeys.Cancel).String()
}
