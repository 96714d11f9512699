package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/adapters/tui/styles"
	"resumedit/internal/application"
	"resumedit/internal/application/commands"
	"resumedit/internal/domain"
	"resumedit/internal/ports"
)

// ResumeKeyMap defines key bindings for the résumé view
type ResumeKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Edit     key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Remove   key.Binding
	Export   key.Binding
	Reset    key.Binding
	Filter   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var ResumeKeys = ResumeKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "pgdown"),
		key.WithHelp("n", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p", "prev page"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "edit field"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "toggle edit"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add entry"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove entry"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// chrome is the number of lines around the document or row list
const chrome = 8

// ResumeModel shows the résumé read-only while viewing and as a list of
// editable fields while editing
type ResumeModel struct {
	ViewState
	store      commands.DocumentStore
	clipboard  ports.Clipboard
	exportPath string

	viewport  viewport.Model
	paginator *Paginator
	rows      []commands.FieldRef

	filter    textinput.Model
	filtering bool
}

type docChangedMsg struct {
	message string
	focus   string
}

// NewResumeModel creates the résumé view. clipboard may be nil.
func NewResumeModel(store commands.DocumentStore, clipboard ports.Clipboard, exportPath string) *ResumeModel {
	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter fields"

	m := &ResumeModel{
		store:      store,
		clipboard:  clipboard,
		exportPath: exportPath,
		viewport:   viewport.New(80, 20),
		paginator:  NewPaginator(20),
		filter:     filter,
	}
	m.Refresh()
	return m
}

// Init initializes the résumé view
func (m *ResumeModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the view dimensions
func (m *ResumeModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-chrome, 3)
	m.paginator.SetPageSize(max(height-chrome, 3))
	m.Refresh()
}

// Refresh re-reads the document from the store
func (m *ResumeModel) Refresh() {
	doc := m.store.Current()
	m.viewport.SetContent(RenderDocument(doc, m.viewport.Width))

	if query := strings.TrimSpace(m.filter.Value()); len(query) >= 2 {
		results := commands.FuzzySort(commands.ListFields(doc), query)
		m.rows = make([]commands.FieldRef, len(results))
		for i, r := range results {
			m.rows[i] = r.FieldRef
		}
	} else {
		m.rows = commands.ListFields(doc)
	}
	m.paginator.SetTotal(len(m.rows))
}

// Editing reports whether the store is in editing mode
func (m *ResumeModel) Editing() bool {
	return m.store.Mode() == application.ModeEditing
}

// Selected returns the field under the cursor
func (m *ResumeModel) Selected() (commands.FieldRef, bool) {
	i := m.paginator.Cursor()
	if i < 0 || i >= len(m.rows) {
		return commands.FieldRef{}, false
	}
	return m.rows[i], true
}

// Select moves the cursor to the row with key
func (m *ResumeModel) Select(rowKey string) bool {
	for i, r := range m.rows {
		if r.Key == rowKey {
			m.paginator.SetCursor(i)
			return true
		}
	}
	return false
}

// Update handles messages for the résumé view
func (m *ResumeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case docChangedMsg:
		m.SetMessage(msg.message, false)
		m.Refresh()
		if msg.focus != "" {
			m.Select(msg.focus)
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}

		m.ClearMessage()

		switch {
		case key.Matches(msg, ResumeKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ResumeKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, ResumeKeys.Toggle):
			result := commands.NewToggleModeCommand(m.store).Execute()
			m.SetMessage(result.Message, false)
			m.Refresh()
			return m, nil
		}

		if m.Editing() {
			return m, m.handleEditingKey(msg)
		}
	}

	if !m.Editing() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *ResumeModel) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, ResumeKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(msg, ResumeKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(msg, ResumeKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, ResumeKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, ResumeKeys.Edit):
		ref, ok := m.Selected()
		if !ok {
			return nil
		}
		if ref.IsEmptySection() {
			m.SetMessage(fmt.Sprintf("%s is empty, press a to add an entry", ref.Section), false)
			return nil
		}
		return func() tea.Msg { return SwitchToFieldEditMsg{Ref: ref} }

	case key.Matches(msg, ResumeKeys.Filter):
		m.filtering = true
		m.filter.Focus()
		return textinput.Blink

	case key.Matches(msg, ResumeKeys.Add):
		return m.addEntry()

	case key.Matches(msg, ResumeKeys.Remove):
		return m.removeEntry()

	case key.Matches(msg, ResumeKeys.Export):
		return m.export()

	case key.Matches(msg, ResumeKeys.Reset):
		return func() tea.Msg { return SwitchToResetMsg{} }
	}
	return nil
}

func (m *ResumeModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.Refresh()
		return nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.paginator.SetCursor(0)
	m.Refresh()
	return cmd
}

func (m *ResumeModel) addEntry() tea.Cmd {
	ref, ok := m.Selected()
	if !ok || !ref.IsEntry() {
		m.SetMessage("Select a list entry or an empty list to add another", true)
		return nil
	}
	return func() tea.Msg {
		result, err := commands.NewAddEntryCommand(m.store, string(ref.Section)).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		focus := ""
		if specs, err := domain.EntryFields(ref.Section); err == nil && len(specs) > 0 {
			focus = commands.EntryKey(ref.Section, result.Index, specs[0].Name)
		}
		return docChangedMsg{message: result.Message, focus: focus}
	}
}

func (m *ResumeModel) removeEntry() tea.Cmd {
	ref, ok := m.Selected()
	if !ok || !ref.IsEntry() || ref.IsEmptySection() {
		m.SetMessage("Select a field of the entry to remove", true)
		return nil
	}
	return func() tea.Msg {
		result, err := commands.NewRemoveEntryCommand(m.store, string(ref.Section), ref.Index).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return docChangedMsg{message: result.Message}
	}
}

func (m *ResumeModel) export() tea.Cmd {
	return func() tea.Msg {
		result, err := commands.NewExportCommand(m.store, m.clipboard, m.exportPath).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return docChangedMsg{message: result.Message}
	}
}

// View renders the résumé view
func (m *ResumeModel) View() string {
	editing := m.Editing()
	doc := m.store.Current()

	v := NewViewBuilder().
		Line(RenderModeBadge(editing) + "  " + styles.Title.UnsetMarginBottom().Render(doc.Name)).
		BlankLine()

	if editing {
		v.Raw(m.renderRows())
	} else {
		v.Raw(m.viewport.View())
	}
	v.BlankLine().BlankLine()

	if m.filtering || m.filter.Value() != "" {
		v.Line(m.filter.View())
	}
	v.Message(m.Message, m.MessageErr)

	if editing {
		return v.Help(
			ResumeKeys.Edit,
			ResumeKeys.Filter,
			ResumeKeys.Add,
			ResumeKeys.Remove,
			ResumeKeys.Export,
			ResumeKeys.Reset,
			ResumeKeys.Toggle,
			ResumeKeys.Help,
			ResumeKeys.Quit,
		).String()
	}
	return v.Help(ResumeKeys.Up, ResumeKeys.Down, ResumeKeys.Toggle, ResumeKeys.Help, ResumeKeys.Quit).String()
}

func (m *ResumeModel) renderRows() string {
	if len(m.rows) == 0 {
		return RenderMuted("No matching fields")
	}

	keyWidth := 0
	for _, r := range m.rows {
		keyWidth = max(keyWidth, len(r.Key))
	}
	valueWidth := 0
	if m.Width > 0 {
		valueWidth = max(m.Width-keyWidth-10, 10)
	}

	var b strings.Builder
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		r := m.rows[i]
		label := padRight(r.Key, keyWidth)
		value := Preview(r.Text, valueWidth)
		if r.IsEmptySection() {
			value = "(empty, press a to add)"
		}
		if i == m.paginator.Cursor() {
			b.WriteString(styles.RowSelected.Render("› " + label + "  " + value))
		} else {
			b.WriteString("  " + styles.RowKey.Render(label) + "  " + styles.RowValue.Render(value))
		}
		b.WriteString("\n")
	}

	if pages := m.paginator.TotalPages(); pages > 1 {
		b.WriteString(RenderMuted(fmt.Sprintf("page %d/%d", m.paginator.CurrentPage(), pages)))
	}
	return strings.TrimRight(b.String(), "\n")
}
