package views

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// defaultMarkdownWidth wraps free text when the caller has no width yet
const defaultMarkdownWidth = 100

var (
	markdownMu        sync.Mutex
	markdownRenderers = map[int]*glamour.TermRenderer{}
)

// markdownStyle follows the color profile lipgloss detected, so output
// without a terminal carries no escape sequences
func markdownStyle() string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return "notty"
	}
	return "dark"
}

func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	markdownMu.Lock()
	defer markdownMu.Unlock()

	if r, ok := markdownRenderers[width]; ok {
		return r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderers[width] = r
	return r, nil
}

// RenderMarkdown renders free text for the terminal, wrapped to width when
// width is positive. Single line breaks are kept. Text that fails to render
// is returned as is.
func RenderMarkdown(text string, width int) string {
	if width <= 0 {
		width = defaultMarkdownWidth
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	r, err := markdownRenderer(width)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
