// ABOUTME: Word wrapping of plain text at column boundaries
// ABOUTME: Breaks at Unicode line-break opportunities; over-long words break by grapheme

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap splits s into lines of at most maxWidth columns. Lines break at
// "\n" and at Unicode line-break opportunities; a word wider than maxWidth
// is broken between grapheme clusters. Trailing spaces are trimmed.
func Wrap(s string, maxWidth int) []string {
	if maxWidth <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		lines = append(lines, wrapParagraph(para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(s string, maxWidth int) []string {
	if s == "" {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0
	flush := func() {
		lines = append(lines, strings.TrimRight(cur.String(), " "))
		cur.Reset()
		curWidth = 0
	}

	state := -1
	for len(s) > 0 {
		var seg string
		seg, s, _, state = uniseg.FirstLineSegmentInString(s, state)
		segWidth := VisibleWidth(seg)
		wordWidth := VisibleWidth(strings.TrimRight(seg, " "))

		if curWidth+wordWidth <= maxWidth {
			cur.WriteString(seg)
			curWidth += segWidth
			continue
		}
		if cur.Len() > 0 {
			flush()
		}
		if wordWidth <= maxWidth {
			cur.WriteString(seg)
			curWidth = segWidth
			continue
		}
		for cluster, cw := range Graphemes(seg) {
			if curWidth+cw > maxWidth && cur.Len() > 0 {
				flush()
			}
			cur.WriteString(cluster)
			curWidth += cw
		}
	}
	flush()
	return lines
}
