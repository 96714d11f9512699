package ports

import "os/exec"

// TextEditor edits a block of text in an external program
type TextEditor interface {
	// Prepare writes text to a scratch file and returns the command that
	// edits it. Suitable for bubbletea's ExecProcess.
	Prepare(text string) (ScratchEdit, error)
}

// ScratchEdit is one pending external edit
type ScratchEdit interface {
	Cmd() *exec.Cmd

	// Result reads the edited text back and removes the scratch file
	Result() (string, error)
}
