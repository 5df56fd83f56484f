// ABOUTME: Defines the Terminal interface: size queries and TTY detection
// ABOUTME: Abstracts the stream a console draws on so tests can use a virtual one

package terminal

// Terminal reports the size of the terminal a console draws on and
// whether the stream is interactive.
type Terminal interface {
	Size() (width, height int, err error)
	IsTerminal() bool
}
