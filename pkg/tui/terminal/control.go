// ABOUTME: Terminal control sequences used by the redraw engine
// ABOUTME: Cursor-up to column 0, erase to end of line/screen, synchronized output brackets

package terminal

import "github.com/charmbracelet/x/ansi"

var (
	// EraseLineRight clears from the cursor to the end of the row.
	EraseLineRight = ansi.EraseLineRight

	// EraseScreenBelow clears from the cursor to the end of the screen.
	EraseScreenBelow = ansi.EraseScreenBelow
)

// CSI 2026 synchronized output: the terminal holds repaints between these.
const (
	SyncBegin = "\x1b[?2026h"
	SyncEnd   = "\x1b[?2026l"
)

// MoveUp returns the sequence that moves the cursor up n rows and to
// column 0. It is empty for n <= 0.
func MoveUp(n int) string {
	if n <= 0 {
		return ""
	}
	return ansi.CursorUp(n) + "\r"
}
