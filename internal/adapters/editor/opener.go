package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"resumedit/internal/ports"
)

// Opener implements ports.TextEditor with the user's $VISUAL / $EDITOR
type Opener struct {
	lookup func(string) (string, error)
	getenv func(string) string
}

var _ ports.TextEditor = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		lookup: exec.LookPath,
		getenv: os.Getenv,
	}
}

// Prepare writes text to a markdown scratch file and builds the editor command
func (o *Opener) Prepare(text string) (ports.ScratchEdit, error) {
	editor := o.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	f, err := os.CreateTemp("", "resumedit-*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to close scratch file: %w", err)
	}

	// $EDITOR may carry arguments (e.g., "code --wait")
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], f.Name())...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return &scratchEdit{cmd: cmd, path: f.Name()}, nil
}

// findEditor returns the editor to use
func (o *Opener) findEditor() string {
	if visual := o.getenv("VISUAL"); visual != "" {
		return visual
	}
	if editor := o.getenv("EDITOR"); editor != "" {
		return editor
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := o.lookup(editor); err == nil {
			return path
		}
	}

	return ""
}

type scratchEdit struct {
	cmd  *exec.Cmd
	path string
}

func (s *scratchEdit) Cmd() *exec.Cmd {
	return s.cmd
}

func (s *scratchEdit) Result() (string, error) {
	defer os.Remove(s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read scratch file: %w", err)
	}
	// Editors usually append a final newline
	return strings.TrimSuffix(string(data), "\n"), nil
}
