package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"resumedit/internal/adapters/tui/views"
	"resumedit/internal/application/commands"
	"resumedit/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewResume ViewState = iota
	ViewFieldEdit
	ViewReset
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store  commands.DocumentStore
	editor ports.TextEditor
	logger logrus.FieldLogger

	state     ViewState
	resume    *views.ResumeModel
	fieldEdit *views.FieldEditModel
	reset     *views.ResetModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. editor and clipboard may be nil.
func NewApp(store commands.DocumentStore, editor ports.TextEditor, clipboard ports.Clipboard, exportPath string, logger logrus.FieldLogger) *App {
	return &App{
		store:     store,
		editor:    editor,
		logger:    logger,
		state:     ViewResume,
		resume:    views.NewResumeModel(store, clipboard, exportPath),
		fieldEdit: views.NewFieldEditModel(store, editor != nil),
		reset:     views.NewResetModel(store),
		help:      views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.resume.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resume.SetSize(msg.Width, msg.Height)
		a.fieldEdit.SetSize(msg.Width, msg.Height)
		a.reset.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFieldEditMsg:
		a.state = ViewFieldEdit
		a.fieldEdit.SetField(msg.Ref)
		return a, a.fieldEdit.Init()

	case views.SwitchToResetMsg:
		a.state = ViewReset
		return a, a.reset.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToResumeMsg:
		a.state = ViewResume
		a.resume.Refresh()
		return a, nil

	case views.FieldSavedMsg:
		a.logger.WithField("field", msg.Key).Debug("field saved")
		a.state = ViewResume
		a.resume.Refresh()
		a.resume.Select(msg.Key)
		a.resume.SetMessage(msg.Message, false)
		return a, nil

	case views.ResetDoneMsg:
		a.logger.WithField("warning", msg.Warning).Info("document reset to default")
		a.state = ViewResume
		a.resume.Refresh()
		a.resume.SetMessage(msg.Message, msg.Warning)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Text)

	case editorFinishedMsg:
		a.finishEditor(msg)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewResume:
		_, cmd = a.resume.Update(msg)
	case ViewFieldEdit:
		_, cmd = a.fieldEdit.Update(msg)
	case ViewReset:
		_, cmd = a.reset.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct {
	edit ports.ScratchEdit
	err  error
}

func (a *App) openEditor(text string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	edit, err := a.editor.Prepare(text)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(edit.Cmd(), func(err error) tea.Msg {
		return editorFinishedMsg{edit: edit, err: err}
	})
}

func (a *App) finishEditor(msg editorFinishedMsg) {
	if msg.edit == nil {
		a.fieldEdit.SetMessage(msg.err.Error(), true)
		return
	}

	text, readErr := msg.edit.Result()
	switch {
	case msg.err != nil:
		a.logger.WithError(msg.err).Warn("external editor failed")
		a.fieldEdit.SetMessage(fmt.Sprintf("Editor exited with error: %v", msg.err), true)
	case readErr != nil:
		a.fieldEdit.SetMessage(readErr.Error(), true)
	default:
		a.fieldEdit.SetValue(text)
		a.fieldEdit.SetMessage("Loaded text from editor, save to apply", false)
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewFieldEdit:
		return a.fieldEdit.View()
	case ViewReset:
		return a.reset.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.resume.View()
	}
}
