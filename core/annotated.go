package core

import "strings"

// StyledSpan is one render span: a run of text sharing a single resolved
// highlight kind.
type StyledSpan struct {
	Text string
	Type AnnotationType
}

// SpanIterator merges a line's fragment sequence with a set of annotations
// into a lazy sequence of styled render spans for a column window
// [left, right). It is recomputed fresh per render call; a consumer may stop
// pulling early without materializing the remainder.
//
// A fragment that straddles either window boundary is rendered as a single
// unstyled space of width one so that a wide glyph is never partially drawn
// at the terminal edge.
type SpanIterator struct {
	fragments   []TextFragment
	annotations []Annotation
	left        int
	right       int

	idx int // next fragment to consume
	col int // display column at which fragments[idx] starts
}

// NewSpanIterator returns an iterator over the given line clipped to the
// column window [left, right).
func NewSpanIterator(line *Line, annotations []Annotation, left, right int) *SpanIterator {
	return &SpanIterator{
		fragments:   line.Fragments(),
		annotations: annotations,
		left:        left,
		right:       right,
	}
}

// styleAt resolves the highlight kind for a fragment's byte span. When
// several annotations overlap the span the one with the highest precedence
// wins.
func (it *SpanIterator) styleAt(fragment TextFragment) AnnotationType {
	resolved := AnnotationNone
	for _, a := range it.annotations {
		if a.Start < fragment.End() && fragment.Start < a.End {
			if a.Type.precedence() > resolved.precedence() {
				resolved = a.Type
			}
		}
	}
	return resolved
}

// Next returns the next coalesced span inside the window, or false when the
// window or the line is exhausted. Adjacent fragments with an identical
// resolved style are merged into one span to minimize terminal writes.
func (it *SpanIterator) Next() (StyledSpan, bool) {
	if it.left >= it.right {
		return StyledSpan{}, false
	}

	// Skip fragments entirely left of the window.
	for it.idx < len(it.fragments) {
		fragment := it.fragments[it.idx]
		end := it.col + fragment.RenderedWidth()
		if end > it.left {
			break
		}
		it.col = end
		it.idx++
	}

	if it.idx >= len(it.fragments) || it.col >= it.right {
		return StyledSpan{}, false
	}

	// A fragment clipped by the left edge renders as a placeholder.
	if it.col < it.left {
		fragment := it.fragments[it.idx]
		it.col += fragment.RenderedWidth()
		it.idx++
		return StyledSpan{Text: " ", Type: AnnotationNone}, true
	}

	first := it.fragments[it.idx]
	if it.col+first.RenderedWidth() > it.right {
		// Clipped by the right edge: emit the placeholder and finish.
		it.col = it.right
		it.idx = len(it.fragments)
		return StyledSpan{Text: " ", Type: AnnotationNone}, true
	}

	style := it.styleAt(first)
	var text strings.Builder
	for it.idx < len(it.fragments) {
		fragment := it.fragments[it.idx]
		end := it.col + fragment.RenderedWidth()
		if end > it.right || it.styleAt(fragment) != style {
			break
		}
		text.WriteString(fragment.Text())
		it.col = end
		it.idx++
	}

	return StyledSpan{Text: text.String(), Type: style}, true
}

// Collect drains the iterator into a slice. Rendering still happens span by
// span; this is a convenience for the viewport projection and for tests.
func (it *SpanIterator) Collect() []StyledSpan {
	var spans []StyledSpan
	for {
		span, ok := it.Next()
		if !ok {
			return spans
		}
		spans = append(spans, span)
	}
}
