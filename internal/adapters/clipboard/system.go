package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"resumedit/internal/ports"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard not supported on this system")

// System copies to the OS clipboard
type System struct{}

var _ ports.Clipboard = System{}

// WriteAll replaces the clipboard contents with text
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
