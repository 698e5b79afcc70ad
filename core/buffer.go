package core

import "strings"

// Buffer represents the document being edited: an ordered sequence of lines.
// The buffer is exclusively owned by the editor controller; core components
// borrow it for the duration of a single operation and never retain
// references across operations.
type Buffer interface {
	// Content access
	Line(row int) *Line // nil if row is out of range
	LineCount() int
	Lines() []string // lines as plain strings, for saving
	IsEmpty() bool

	// Modification. Row and grapheme indices clamp to valid boundaries.
	InsertRune(row, graphemeIdx int, r rune)
	DeleteGrapheme(row, graphemeIdx int) // no-op when out of range
	SplitLine(row, graphemeIdx int)      // Enter: split row at the grapheme
	JoinLines(row int)                   // Backspace at line start: merge row+1 into row

	// Dirty tracking
	IsModified() bool
	MarkSaved()

	SetContent(content string)
}

type lineBuffer struct {
	lines    []*Line
	modified bool
}

// NewBuffer creates an empty single-line buffer.
func NewBuffer() Buffer {
	return &lineBuffer{lines: []*Line{NewLine("")}}
}

// NewBufferFromString creates a buffer from newline-delimited content.
func NewBufferFromString(content string) Buffer {
	b := &lineBuffer{}
	b.SetContent(content)
	return b
}

func (b *lineBuffer) SetContent(content string) {
	raw := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	lines := make([]*Line, len(raw))
	for i, s := range raw {
		lines[i] = NewLine(strings.TrimSuffix(s, "\r"))
	}
	b.lines = lines
	b.modified = false
}

func (b *lineBuffer) Line(row int) *Line {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b *lineBuffer) LineCount() int {
	return len(b.lines)
}

func (b *lineBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = line.String()
	}
	return out
}

func (b *lineBuffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0].ByteLen() == 0
}

func (b *lineBuffer) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= len(b.lines) {
		return len(b.lines) - 1
	}
	return row
}

func (b *lineBuffer) InsertRune(row, graphemeIdx int, r rune) {
	b.lines[b.clampRow(row)].InsertRune(graphemeIdx, r)
	b.modified = true
}

func (b *lineBuffer) DeleteGrapheme(row, graphemeIdx int) {
	line := b.Line(row)
	if line == nil {
		return
	}
	if graphemeIdx < 0 || graphemeIdx >= line.GraphemeCount() {
		return
	}
	line.Delete(graphemeIdx)
	b.modified = true
}

func (b *lineBuffer) SplitLine(row, graphemeIdx int) {
	row = b.clampRow(row)
	tail := b.lines[row].SplitAt(graphemeIdx)

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = tail
	b.modified = true
}

func (b *lineBuffer) JoinLines(row int) {
	if row < 0 || row+1 >= len(b.lines) {
		return
	}
	b.lines[row].Append(b.lines[row+1])
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	b.modified = true
}

func (b *lineBuffer) IsModified() bool {
	return b.modified
}

func (b *lineBuffer) MarkSaved() {
	b.modified = false
}
