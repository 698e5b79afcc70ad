package core

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Line owns the text of one document line and a lazily rebuilt fragment
// segmentation of it. The fragment cache is always a complete, gap-free
// split of the current text into grapheme clusters in text order; any
// mutation invalidates it and the next read rebuilds it.
//
// All index-based operations clamp out-of-range grapheme indices to the end
// of the line instead of failing, so cursor and viewport arithmetic stays
// robust during resize and rapid edit bursts.
type Line struct {
	text      string
	fragments []TextFragment
	dirty     bool
}

// NewLine creates a line from a text string. The string must not contain
// newline characters; callers split on '\n' before constructing lines.
func NewLine(text string) *Line {
	return &Line{text: text, dirty: true}
}

func (l *Line) invalidate() {
	l.dirty = true
}

// Fragments returns the line's fragment sequence, rebuilding it if the text
// changed since the last call.
func (l *Line) Fragments() []TextFragment {
	if l.dirty {
		l.fragments = buildFragments(l.text)
		l.dirty = false
	}
	return l.fragments
}

// String returns the raw text content.
func (l *Line) String() string {
	return l.text
}

// ByteLen returns the length of the line in bytes.
func (l *Line) ByteLen() int {
	return len(l.text)
}

// GraphemeCount returns the number of grapheme clusters in the line.
func (l *Line) GraphemeCount() int {
	return len(l.Fragments())
}

// Width returns the total display width of the line in terminal columns.
func (l *Line) Width() int {
	return l.WidthUpTo(l.GraphemeCount())
}

// WidthUpTo sums the display widths of the fragments before the given
// grapheme index. This is the display column of that grapheme.
func (l *Line) WidthUpTo(graphemeIdx int) int {
	width := 0
	for i, fragment := range l.Fragments() {
		if i >= graphemeIdx {
			break
		}
		width += fragment.RenderedWidth()
	}
	return width
}

// GraphemeIndexAtColumn returns the index of the grapheme boundary at or
// before the target display column. Columns past the end of the line resolve
// to the grapheme count.
func (l *Line) GraphemeIndexAtColumn(col int) int {
	if col <= 0 {
		return 0
	}
	width := 0
	for i, fragment := range l.Fragments() {
		next := width + fragment.RenderedWidth()
		if next > col {
			return i
		}
		width = next
	}
	return l.GraphemeCount()
}

// ByteOffset returns the byte offset where the given grapheme starts.
// An index at or past the end resolves to the line's byte length.
func (l *Line) ByteOffset(graphemeIdx int) int {
	fragments := l.Fragments()
	if graphemeIdx < 0 {
		return 0
	}
	if graphemeIdx >= len(fragments) {
		return len(l.text)
	}
	return fragments[graphemeIdx].Start
}

// GraphemeIndexAtByte returns the index of the first grapheme starting at or
// after the given byte offset.
func (l *Line) GraphemeIndexAtByte(byteOffset int) int {
	fragments := l.Fragments()
	for i, fragment := range fragments {
		if fragment.Start >= byteOffset {
			return i
		}
	}
	return len(fragments)
}

// InsertRune inserts a character at the byte offset corresponding to the
// given grapheme index. Index zero inserts at the start of the line; an
// index at or past the grapheme count appends.
func (l *Line) InsertRune(graphemeIdx int, r rune) {
	at := l.ByteOffset(graphemeIdx)
	l.text = l.text[:at] + string(r) + l.text[at:]
	l.invalidate()
}

// Delete removes the grapheme cluster at the given index. Out-of-range
// indices are a no-op.
func (l *Line) Delete(graphemeIdx int) {
	fragments := l.Fragments()
	if graphemeIdx < 0 || graphemeIdx >= len(fragments) {
		return
	}
	fragment := fragments[graphemeIdx]
	l.text = l.text[:fragment.Start] + l.text[fragment.End():]
	l.invalidate()
}

// SplitAt truncates the line at the given grapheme index and returns a new
// line holding the tail. Splitting at or past the end returns an empty line.
func (l *Line) SplitAt(graphemeIdx int) *Line {
	at := l.ByteOffset(graphemeIdx)
	tail := l.text[at:]
	l.text = l.text[:at]
	l.invalidate()
	return NewLine(tail)
}

// Append concatenates another line's text onto this one.
func (l *Line) Append(other *Line) {
	l.text += other.text
	l.invalidate()
}

// FindAll returns the byte offsets of every occurrence of query in the line
// that starts and ends on grapheme cluster boundaries. Matching is
// case-sensitive byte-substring equality; byte matches that would split a
// cluster are discarded.
func (l *Line) FindAll(query string) []int {
	if query == "" {
		return nil
	}

	var offsets []int
	from := 0
	for {
		idx := strings.Index(l.text[from:], query)
		if idx < 0 {
			break
		}
		start := from + idx
		if l.alignsWithClusters(start, start+len(query)) {
			offsets = append(offsets, start)
		}
		from = start + 1
	}
	return offsets
}

func (l *Line) alignsWithClusters(start, end int) bool {
	startOK := start == 0 || start == len(l.text)
	endOK := end == 0 || end == len(l.text)
	for _, fragment := range l.Fragments() {
		if fragment.Start == start {
			startOK = true
		}
		if fragment.Start == end {
			endOK = true
		}
		if startOK && endOK {
			return true
		}
	}
	return startOK && endOK
}

// GraphemeCountOf counts the grapheme clusters in an arbitrary string.
func GraphemeCountOf(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}
