package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Accent    = lipgloss.Color("#60A5FA") // Blue
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Document sections
	Name = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	EntryTitle = lipgloss.NewStyle().
			Bold(true)

	EntryMeta = lipgloss.NewStyle().
			Foreground(Muted)

	Link = lipgloss.NewStyle().
		Foreground(Accent)

	Badge = lipgloss.NewStyle().
		Foreground(Black).
		Background(Secondary).
		Padding(0, 1)

	// Mode indicator
	ModeViewing = lipgloss.NewStyle().
			Background(Accent).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	ModeEditing = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black).
			Bold(true).
			Padding(0, 1)

	// Field rows
	RowKey = lipgloss.NewStyle().
		Foreground(Secondary)

	RowValue = lipgloss.NewStyle()

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Search
	SearchMatch = lipgloss.NewStyle().
			Background(Warning).
			Foreground(Black)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// ModeBadge returns the indicator style for the edit mode
func ModeBadge(editing bool) lipgloss.Style {
	if editing {
		return ModeEditing
	}
	return ModeViewing
}
