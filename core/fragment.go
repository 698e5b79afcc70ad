package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeWidth is the number of terminal columns a grapheme cluster occupies.
type GraphemeWidth int

const (
	WidthZero GraphemeWidth = 0
	WidthHalf GraphemeWidth = 1
	WidthFull GraphemeWidth = 2
)

// TextFragment is the atomic renderable unit of a line: one grapheme cluster
// with its resolved display width, an optional replacement glyph for
// non-printable input, and its starting byte offset within the line.
type TextFragment struct {
	Cluster     string
	Width       GraphemeWidth
	Replacement rune // 0 if the cluster renders as-is
	Start       int  // byte offset within the owning line
}

// ByteLen returns the length of the cluster in bytes of the original text,
// regardless of any replacement glyph.
func (f TextFragment) ByteLen() int {
	return len(f.Cluster)
}

// End returns the byte offset just past the cluster.
func (f TextFragment) End() int {
	return f.Start + len(f.Cluster)
}

// RenderedWidth returns the width the fragment occupies on screen. Replaced
// fragments always render one column wide.
func (f TextFragment) RenderedWidth() int {
	if f.Replacement != 0 {
		return 1
	}
	return int(f.Width)
}

// Text returns the string that should appear on screen for this fragment.
func (f TextFragment) Text() string {
	if f.Replacement != 0 {
		return string(f.Replacement)
	}
	return f.Cluster
}

// clusterWidth computes the display width of a single grapheme cluster.
// runewidth covers the common cases; uniseg is consulted when runewidth
// reports zero, which happens for some emoji sequences.
func clusterWidth(cluster string) GraphemeWidth {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	switch {
	case w <= 0:
		return WidthZero
	case w == 1:
		return WidthHalf
	default:
		return WidthFull
	}
}

// replacementFor decides whether a cluster needs a visible placeholder.
// Regular spaces and printable clusters render as-is. Tabs become a plain
// space, other visible whitespace becomes ␣, lone control characters become
// ▯ and remaining zero-width clusters become ·.
func replacementFor(cluster string) rune {
	switch cluster {
	case " ":
		return 0
	case "\t":
		return ' '
	}

	width := clusterWidth(cluster)
	if width > 0 && strings.TrimSpace(cluster) == "" {
		return '␣'
	}
	if width == 0 {
		r, size := utf8.DecodeRuneInString(cluster)
		if size == len(cluster) && unicode.IsControl(r) {
			return '▯'
		}
		return '·'
	}

	return 0
}

// buildFragments segments text into grapheme clusters and classifies each.
// It is a pure function of the text; Line invokes it only when its cached
// fragments are stale.
func buildFragments(text string) []TextFragment {
	if text == "" {
		return nil
	}

	fragments := make([]TextFragment, 0, utf8.RuneCountInString(text))
	g := uniseg.NewGraphemes(text)
	offset := 0
	for g.Next() {
		cluster := g.Str()
		fragment := TextFragment{
			Cluster: cluster,
			Start:   offset,
		}
		if repl := replacementFor(cluster); repl != 0 {
			fragment.Replacement = repl
			fragment.Width = WidthHalf
		} else {
			fragment.Width = clusterWidth(cluster)
		}
		fragments = append(fragments, fragment)
		offset += len(cluster)
	}
	return fragments
}
