// ABOUTME: SGR state machine that tracks active text styling
// ABOUTME: Processes CSI SGR sequences into a flat State of attributes and colors

package ansitrack

import (
	"fmt"
	"strconv"
	"strings"
)

// State is the styling in effect after a run of SGR sequences.
// Colors use lipgloss color specs: "0"-"255" for palette colors,
// "#rrggbb" for true color, "" for the terminal default.
type State struct {
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
	Foreground    string
	Background    string
}

// Tracker maintains the current SGR (Select Graphic Rendition) state.
type Tracker struct {
	state State
}

// Reset clears all SGR state.
func (t *Tracker) Reset() {
	t.state = State{}
}

// State returns the styling currently in effect.
func (t *Tracker) State() State {
	return t.state
}

// Process applies an SGR escape sequence to the tracker state.
// Sequences that are not CSI SGR ("\x1b[...m") are ignored.
func (t *Tracker) Process(seq string) {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return
	}
	params := strings.ReplaceAll(seq[2:len(seq)-1], ":", ";")
	if params == "" {
		t.Reset()
		return
	}

	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			if parts[i] == "" {
				code = 0
			} else {
				continue
			}
		}
		s := &t.state
		switch {
		case code == 0:
			t.Reset()
		case code == 1:
			s.Bold = true
		case code == 2:
			s.Dim = true
		case code == 3:
			s.Italic = true
		case code == 4:
			s.Underline = true
		case code == 5:
			s.Blink = true
		case code == 7:
			s.Reverse = true
		case code == 8:
			s.Hidden = true
		case code == 9:
			s.Strikethrough = true
		case code == 22:
			s.Bold, s.Dim = false, false
		case code == 23:
			s.Italic = false
		case code == 24:
			s.Underline = false
		case code == 25:
			s.Blink = false
		case code == 27:
			s.Reverse = false
		case code == 28:
			s.Hidden = false
		case code == 29:
			s.Strikethrough = false
		case code >= 30 && code <= 37:
			s.Foreground = strconv.Itoa(code - 30)
		case code >= 90 && code <= 97:
			s.Foreground = strconv.Itoa(code - 90 + 8)
		case code == 38:
			var n int
			s.Foreground, n = extendedColor(parts[i+1:])
			i += n
		case code == 39:
			s.Foreground = ""
		case code >= 40 && code <= 47:
			s.Background = strconv.Itoa(code - 40)
		case code >= 100 && code <= 107:
			s.Background = strconv.Itoa(code - 100 + 8)
		case code == 48:
			var n int
			s.Background, n = extendedColor(parts[i+1:])
			i += n
		case code == 49:
			s.Background = ""
		}
	}
}

// IsActive returns true if any SGR state is set.
func (t *Tracker) IsActive() bool {
	return t.state != State{}
}

// extendedColor decodes the tail of a 38/48 sequence ("5;N" or
// "2;R;G;B") and returns the color spec plus how many parts it consumed.
func extendedColor(parts []string) (string, int) {
	if len(parts) == 0 {
		return "", 0
	}
	switch parts[0] {
	case "5":
		if len(parts) < 2 {
			return "", len(parts)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 0 || n > 255 {
			return "", 2
		}
		return strconv.Itoa(n), 2
	case "2":
		if len(parts) < 4 {
			return "", len(parts)
		}
		var rgb [3]int
		for j := range rgb {
			v, err := strconv.Atoi(parts[1+j])
			if err != nil || v < 0 || v > 255 {
				return "", 4
			}
			rgb[j] = v
		}
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), 4
	default:
		return "", 1
	}
}
