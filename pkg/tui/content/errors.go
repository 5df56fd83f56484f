// ABOUTME: Sentinel errors for content construction
// ABOUTME: Text with newlines, tabs, or control characters would corrupt row-based redraws

package content

import "errors"

var (
	// ErrInvalidWhitespace is returned for text containing whitespace other
	// than the ASCII space (newlines, tabs, form feeds, ...).
	ErrInvalidWhitespace = errors.New("content contains non-space whitespace")

	// ErrControlCharacter is returned for text containing control characters,
	// including the ESC that starts an embedded escape sequence.
	ErrControlCharacter = errors.New("content contains control characters")
)
