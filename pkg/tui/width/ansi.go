// ABOUTME: ANSI escape sequence stripping for width measurement
// ABOUTME: Delegates to charmbracelet/x/ansi once an ESC byte is present

package width

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes all ANSI escape sequences from s.
func StripANSI(s string) string {
	if strings.IndexByte(s, '\x1b') < 0 {
		return s
	}
	return ansi.Strip(s)
}
