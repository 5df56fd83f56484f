// ABOUTME: Builds Lines from multi-line strings, plain or carrying SGR escape sequences
// ABOUTME: SGR state carries across rows; non-SGR escape sequences are dropped

package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mauromedda/pi-console/pkg/tui/internal/ansitrack"
)

// LinesFromString splits s on newlines and returns one single-span row
// per line, all drawn in style. Empty lines become empty rows.
func LinesFromString(s string, style Style) (Lines, error) {
	rows := splitRows(s)
	out := make(Lines, 0, len(rows))
	for i, row := range rows {
		if row == "" {
			out = append(out, Line{})
			continue
		}
		span, err := NewSpan(row, style)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, NewLine(span))
	}
	return out, nil
}

// ParseANSI converts text styled with SGR escape sequences into Lines whose
// spans carry the equivalent Styles. Other escape sequences are ignored.
func ParseANSI(s string) (Lines, error) {
	return parseANSI(s, NewSpan)
}

// ParseANSILossy is ParseANSI for untrusted text: tabs and other
// whitespace become spaces and stray control characters are dropped.
func ParseANSILossy(s string) Lines {
	lines, _ := parseANSI(s, func(text string, style Style) (Span, error) {
		return NewSpanLossy(text, style), nil
	})
	return lines
}

type spanFunc func(text string, style Style) (Span, error)

func parseANSI(s string, mk spanFunc) (Lines, error) {
	var tr ansitrack.Tracker
	p := ansi.NewParser()
	rows := splitRows(s)
	out := make(Lines, 0, len(rows))
	for i, row := range rows {
		line, err := parseRow(row, &tr, p, mk)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, line)
	}
	return out, nil
}

func parseRow(row string, tr *ansitrack.Tracker, p *ansi.Parser, mk spanFunc) (Line, error) {
	var line Line
	var text strings.Builder
	flush := func() error {
		if text.Len() == 0 {
			return nil
		}
		span, err := mk(text.String(), styleFromState(tr.State()))
		if err != nil {
			return err
		}
		line.spans = append(line.spans, span)
		text.Reset()
		return nil
	}

	for i := 0; i < len(row); {
		if row[i] != '\x1b' {
			next := strings.IndexByte(row[i:], '\x1b')
			if next < 0 {
				next = len(row) - i
			}
			text.WriteString(row[i : i+next])
			i += next
			continue
		}
		seq, _, n, _ := ansi.DecodeSequence(row[i:], ansi.NormalState, p)
		if isSGR(seq, p) {
			if err := flush(); err != nil {
				return Line{}, err
			}
			tr.Process(seq)
		}
		i += max(n, 1)
	}
	if err := flush(); err != nil {
		return Line{}, err
	}
	return line, nil
}

// isSGR reports whether seq, just decoded by p, is a complete CSI SGR
// sequence with no private prefix or intermediate bytes.
func isSGR(seq string, p *ansi.Parser) bool {
	if !ansi.HasCsiPrefix(seq) {
		return false
	}
	cmd := ansi.Cmd(p.Command())
	return cmd.Final() == 'm' && cmd.Prefix() == 0 && cmd.Intermediate() == 0
}

func splitRows(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
