package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"resumedit/internal/adapters/filesystem"
	"resumedit/internal/application"
	"resumedit/internal/logging"
)

func newTestStore(t *testing.T, opts ...application.StoreOption) *application.Store {
	t.Helper()
	kv, err := filesystem.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return application.NewStore(application.NewPersistence(kv, "", logging.Discard()), logging.Discard(), opts...)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// run executes cmd and returns its message, or nil for a nil command
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
