// ABOUTME: ProcessTerminal implements Terminal for an *os.File using golang.org/x/term
// ABOUTME: Compatible reports whether every given stream is an interactive terminal

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a file descriptor.
type ProcessTerminal struct {
	f *os.File
}

// NewProcessTerminal returns a ProcessTerminal for f (usually os.Stderr).
func NewProcessTerminal(f *os.File) *ProcessTerminal {
	return &ProcessTerminal{f: f}
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size of %s: %w", t.f.Name(), err)
	}
	return w, h, nil
}

// IsTerminal reports whether the file is an interactive terminal.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.f.Fd()))
}

// Compatible reports whether all files are terminals. With no files it
// checks stdout and stderr.
func Compatible(files ...*os.File) bool {
	if len(files) == 0 {
		files = []*os.File{os.Stdout, os.Stderr}
	}
	for _, f := range files {
		if !term.IsTerminal(int(f.Fd())) {
			return false
		}
	}
	return true
}
