package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return SwitchToResumeMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("resumedit Help"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Terminal résumé editor"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Viewing"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Scroll"))
	b.WriteString(helpLine("e", "Switch to editing"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Select field"))
	b.WriteString(helpLine("n / p", "Next / previous page"))
	b.WriteString(helpLine("Enter", "Edit selected field"))
	b.WriteString(helpLine("/", "Filter fields"))
	b.WriteString(helpLine("a", "Add entry to the selected list"))
	b.WriteString(helpLine("d", "Remove the selected entry"))
	b.WriteString(helpLine("x", "Export JSON and copy it"))
	b.WriteString(helpLine("r", "Reset to default"))
	b.WriteString(helpLine("e", "Back to viewing"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Field editor"))
	b.WriteString("\n")
	b.WriteString(helpLine("Enter", "Save single-line field"))
	b.WriteString(helpLine("Ctrl+S", "Save multi-line field"))
	b.WriteString(helpLine("Ctrl+E", "Edit in $EDITOR"))
	b.WriteString(helpLine("Esc", "Cancel"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Lists"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Tags (skills, badges, tech stack) are comma separated."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  Summary and descriptions accept **bold**, # headings and * bullets."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
