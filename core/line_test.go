package core

import "testing"

func TestLineWidths(t *testing.T) {
	// c, a, f, é are one column each; the emoji is two.
	line := NewLine("café🎉test")

	if got, want := line.GraphemeCount(), 9; got != want {
		t.Fatalf("grapheme count: got %d, want %d", got, want)
	}
	if got, want := line.WidthUpTo(5), 6; got != want {
		t.Fatalf("width up to the emoji inclusive: got %d, want %d", got, want)
	}
	if got, want := line.Width(), 10; got != want {
		t.Fatalf("total width: got %d, want %d", got, want)
	}
}

func TestLineInsertAfterEmoji(t *testing.T) {
	line := NewLine("café🎉test")
	line.InsertRune(5, 'x')
	if got, want := line.String(), "café🎉xtest"; got != want {
		t.Fatalf("insert: got %q, want %q", got, want)
	}
}

func TestLineInsertDeleteInverse(t *testing.T) {
	original := "ab🎉cd"
	line := NewLine(original)

	for idx := 0; idx <= line.GraphemeCount(); idx++ {
		line.InsertRune(idx, 'x')
		line.Delete(idx)
		if got := line.String(); got != original {
			t.Fatalf("insert+delete at %d: got %q, want %q", idx, got, original)
		}
	}
}

func TestLineSplitAppendInverse(t *testing.T) {
	original := "héllo 世界"
	for idx := 0; idx <= GraphemeCountOf(original); idx++ {
		line := NewLine(original)
		tail := line.SplitAt(idx)
		line.Append(tail)
		if got := line.String(); got != original {
			t.Fatalf("split+append at %d: got %q, want %q", idx, got, original)
		}
	}
}

func TestLineSplitAt(t *testing.T) {
	line := NewLine("café🎉test")
	tail := line.SplitAt(5)
	if got, want := line.String(), "café🎉"; got != want {
		t.Fatalf("head after split: got %q, want %q", got, want)
	}
	if got, want := tail.String(), "test"; got != want {
		t.Fatalf("tail after split: got %q, want %q", got, want)
	}
}

func TestLineClampsOutOfRange(t *testing.T) {
	line := NewLine("abc")

	// Insert past the end appends.
	line.InsertRune(99, 'd')
	if got, want := line.String(), "abcd"; got != want {
		t.Fatalf("insert past end: got %q, want %q", got, want)
	}

	// Delete out of range is a no-op.
	line.Delete(99)
	line.Delete(-1)
	if got, want := line.String(), "abcd"; got != want {
		t.Fatalf("delete out of range: got %q, want %q", got, want)
	}

	// Split past the end leaves the line intact and returns an empty tail.
	tail := line.SplitAt(99)
	if got, want := line.String(), "abcd"; got != want {
		t.Fatalf("split past end: got %q, want %q", got, want)
	}
	if tail.String() != "" {
		t.Fatalf("tail of out-of-range split: got %q, want empty", tail.String())
	}
}

func TestGraphemeIndexAtColumnRoundTrip(t *testing.T) {
	lines := []string{
		"plain ascii",
		"café🎉test",
		"世界 wide 文字",
		"é decomposed",
		"",
	}

	for _, text := range lines {
		line := NewLine(text)
		for i := 0; i <= line.GraphemeCount(); i++ {
			col := line.WidthUpTo(i)
			got := line.GraphemeIndexAtColumn(col)
			// The resolved boundary must not exceed i and must share
			// its display column.
			if got > i {
				t.Fatalf("%q: index for col %d: got %d, want <= %d", text, col, got, i)
			}
			if line.WidthUpTo(got) != col {
				t.Fatalf("%q: boundary %d has col %d, want %d", text, got, line.WidthUpTo(got), col)
			}
		}
	}
}

func TestGraphemeIndexAtColumnInsideWideGlyph(t *testing.T) {
	line := NewLine("a🎉b")
	// Column 2 lands in the middle of the two-column emoji; resolve to the
	// boundary not exceeding the column.
	if got, want := line.GraphemeIndexAtColumn(2), 1; got != want {
		t.Fatalf("column inside wide glyph: got %d, want %d", got, want)
	}
	if got, want := line.GraphemeIndexAtColumn(3), 2; got != want {
		t.Fatalf("column after wide glyph: got %d, want %d", got, want)
	}
	if got, want := line.GraphemeIndexAtColumn(99), 3; got != want {
		t.Fatalf("column past the line: got %d, want %d", got, want)
	}
}

func TestLineFindAll(t *testing.T) {
	line := NewLine("abcabcab")
	got := line.FindAll("ab")
	want := []int{0, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("match count: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLineFindAllRespectsClusterBoundaries(t *testing.T) {
	// "e" followed by a combining accent forms one cluster; a search for
	// the bare "e" must not report a match inside it.
	line := NewLine("éx")
	if got := line.FindAll("e"); got != nil {
		t.Fatalf("match inside cluster: got %v, want none", got)
	}
	if got := line.FindAll("x"); len(got) != 1 || got[0] != 3 {
		t.Fatalf("aligned match: got %v, want [3]", got)
	}
}

func TestLineFindAllEmptyQuery(t *testing.T) {
	if got := NewLine("abc").FindAll(""); got != nil {
		t.Fatalf("empty query: got %v, want none", got)
	}
}

func TestLineByteOffsetConversions(t *testing.T) {
	line := NewLine("café🎉")
	if got, want := line.ByteOffset(4), 5; got != want {
		t.Fatalf("byte offset of emoji: got %d, want %d", got, want)
	}
	if got, want := line.GraphemeIndexAtByte(5), 4; got != want {
		t.Fatalf("grapheme at emoji byte: got %d, want %d", got, want)
	}
	if got, want := line.ByteOffset(99), line.ByteLen(); got != want {
		t.Fatalf("byte offset past end: got %d, want %d", got, want)
	}
}
