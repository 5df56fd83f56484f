// ABOUTME: Grapheme-aware display width and segmentation for span text
// ABOUTME: LRU cache for non-ASCII strings; fast path for pure ASCII

package width

import (
	"container/list"
	"iter"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU cache for non-ASCII string widths.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// VisibleWidth returns the display width of s. ANSI escape sequences
// contribute zero width; grapheme clusters count the cells they occupy.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := computeWidth(s)
	widthCache.put(s, w)
	return w
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func computeWidth(s string) int {
	w := 0
	for _, cw := range Graphemes(StripANSI(s)) {
		w += cw
	}
	return w
}

// GraphemeWidth returns the display width of a single grapheme cluster.
func GraphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	if len(cluster) == 1 && cluster[0] >= 0x20 && cluster[0] <= 0x7E {
		return 1
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Graphemes yields each grapheme cluster of s with its display width.
// s must not contain escape sequences.
func Graphemes(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		state := -1
		for len(s) > 0 {
			var cluster string
			cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			if !yield(cluster, GraphemeWidth(cluster)) {
				return
			}
		}
	}
}

// Truncate returns the longest prefix of s made of whole grapheme clusters
// whose width is at most maxWidth, and that prefix's width. A wide cluster
// that would straddle maxWidth is dropped, so the result can be narrower.
func Truncate(s string, maxWidth int) (string, int) {
	if maxWidth <= 0 {
		return "", 0
	}
	if isPlainASCII(s) {
		if len(s) <= maxWidth {
			return s, len(s)
		}
		return s[:maxWidth], maxWidth
	}
	end, col := 0, 0
	for cluster, cw := range Graphemes(s) {
		if col+cw > maxWidth {
			break
		}
		col += cw
		end += len(cluster)
	}
	return s[:end], col
}
