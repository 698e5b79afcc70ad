package core

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Concrete implementation of Editor. Single-threaded by design: every
// operation runs to completion before the next input is accepted, so the
// buffer needs no locking.
type editor struct {
	buffer    Buffer
	cursor    Cursor
	scroll    ScrollOffset
	size      Size
	search    *SearchInfo
	selection *Position // selection anchor, nil when inactive
	clipboard Clipboard
	signals   chan Signal
}

// New creates an editor with an empty single-line document.
func New(clipboard Clipboard) Editor {
	return &editor{
		buffer:    NewBuffer(),
		size:      Size{Width: 80, Height: 24},
		clipboard: clipboard,
		signals:   make(chan Signal, 16),
	}
}

func (e *editor) Buffer() Buffer {
	return e.buffer
}

func (e *editor) SetContent(content string) {
	e.buffer.SetContent(content)
	e.cursor = Cursor{}
	e.scroll = ScrollOffset{}
	e.search = nil
	e.selection = nil
}

func (e *editor) Lines() []string {
	return e.buffer.Lines()
}

func (e *editor) Cursor() Cursor {
	return e.cursor
}

func (e *editor) Status() DocumentStatus {
	return DocumentStatus{
		LineCount: e.buffer.LineCount(),
		Position:  e.cursor.Position,
		Modified:  e.buffer.IsModified(),
	}
}

// --- Editing ---

func (e *editor) InsertRune(r rune) {
	e.ClearSelection()
	pos := e.cursor.Position
	before := 0
	if line := e.buffer.Line(pos.Row); line != nil {
		before = line.GraphemeCount()
	}
	e.buffer.InsertRune(pos.Row, pos.Col, r)
	// A combining character merges into the preceding cluster instead of
	// adding one; the cursor only advances when a new cluster appeared.
	if line := e.buffer.Line(pos.Row); line != nil && line.GraphemeCount() > before {
		e.cursor.Position.Col++
	}
	e.cursor.rememberCol(e.buffer)
	e.scrollToCursor()
}

func (e *editor) InsertNewline() {
	e.ClearSelection()
	e.buffer.SplitLine(e.cursor.Position.Row, e.cursor.Position.Col)
	e.cursor.Position.Row++
	e.cursor.Position.Col = 0
	e.cursor.Preferred = 0
	e.scrollToCursor()
}

func (e *editor) DeleteBackward() {
	e.ClearSelection()
	pos := e.cursor.Position
	switch {
	case pos.Col > 0:
		e.buffer.DeleteGrapheme(pos.Row, pos.Col-1)
		e.cursor.Position.Col--
	case pos.Row > 0:
		prev := e.buffer.Line(pos.Row - 1)
		col := 0
		if prev != nil {
			col = prev.GraphemeCount()
		}
		e.buffer.JoinLines(pos.Row - 1)
		e.cursor.Position = Position{Row: pos.Row - 1, Col: col}
	}
	e.cursor.rememberCol(e.buffer)
	e.scrollToCursor()
}

func (e *editor) DeleteForward() {
	e.ClearSelection()
	pos := e.cursor.Position
	line := e.buffer.Line(pos.Row)
	if line == nil {
		return
	}
	if pos.Col < line.GraphemeCount() {
		e.buffer.DeleteGrapheme(pos.Row, pos.Col)
	} else {
		e.buffer.JoinLines(pos.Row)
	}
	e.scrollToCursor()
}

func (e *editor) Move(m Move) {
	switch m {
	case MoveUp:
		e.cursor.moveVertical(e.buffer, -1)
	case MoveDown:
		e.cursor.moveVertical(e.buffer, 1)
	case MoveLeft:
		e.cursor.moveLeft(e.buffer)
	case MoveRight:
		e.cursor.moveRight(e.buffer)
	case MovePageUp:
		e.cursor.moveVertical(e.buffer, -e.size.Height)
	case MovePageDown:
		e.cursor.moveVertical(e.buffer, e.size.Height)
	case MoveStartOfLine:
		e.cursor.moveStartOfLine(e.buffer)
	case MoveEndOfLine:
		e.cursor.moveEndOfLine(e.buffer)
	}
	e.cursor.clamp(e.buffer)
	e.scrollToCursor()
}

// --- Search state machine ---

func (e *editor) EnterSearch() {
	e.search = newSearchInfo(e.cursor, e.scroll)
}

func (e *editor) SearchAppend(r rune) {
	if e.search == nil {
		return
	}
	e.search.query += string(r)
	e.refreshSearch()
}

func (e *editor) SearchDeleteChar() {
	if e.search == nil || e.search.query == "" {
		return
	}
	// Erase the last grapheme cluster, not the last rune: a multi-codepoint
	// query character disappears in one keystroke.
	start := 0
	g := uniseg.NewGraphemes(e.search.query)
	for g.Next() {
		start, _ = g.Positions()
	}
	e.search.query = e.search.query[:start]
	e.refreshSearch()
}

func (e *editor) refreshSearch() {
	e.search.rescan(e.buffer)
	e.moveToCurrentMatch()
}

func (e *editor) SearchNext() {
	if e.search == nil {
		return
	}
	e.search.next()
	e.moveToCurrentMatch()
}

func (e *editor) SearchPrev() {
	if e.search == nil {
		return
	}
	e.search.prev()
	e.moveToCurrentMatch()
}

func (e *editor) moveToCurrentMatch() {
	match, ok := e.search.currentMatch()
	if !ok {
		return
	}
	e.cursor.Position = matchPosition(e.buffer, match)
	e.cursor.rememberCol(e.buffer)
	e.scrollToCursor()
}

func (e *editor) CommitSearch() {
	e.search = nil
}

func (e *editor) CancelSearch() {
	if e.search == nil {
		return
	}
	e.cursor = e.search.prevCursor
	e.scroll = e.search.prevScroll
	e.search = nil
	e.cursor.clamp(e.buffer)
}

func (e *editor) SearchActive() bool {
	return e.search != nil
}

func (e *editor) SearchQuery() string {
	if e.search == nil {
		return ""
	}
	return e.search.query
}

func (e *editor) MatchCount() int {
	if e.search == nil {
		return 0
	}
	return len(e.search.matches)
}

func (e *editor) CurrentMatch() int {
	if e.search == nil {
		return -1
	}
	return e.search.current
}

// --- Selection ---

func (e *editor) StartSelection() {
	anchor := e.cursor.Position
	e.selection = &anchor
}

func (e *editor) ClearSelection() {
	e.selection = nil
}

func (e *editor) HasSelection() bool {
	return e.selection != nil
}

// selectionRange returns the normalized selection bounds in document order.
func (e *editor) selectionRange() (start, end Position, ok bool) {
	if e.selection == nil {
		return Position{}, Position{}, false
	}
	start, end = *e.selection, e.cursor.Position
	if end.Less(start) {
		start, end = end, start
	}
	return start, end, true
}

// selectionSpan returns the selected byte range on the given row, or false
// if the row is outside the selection.
func (e *editor) selectionSpan(row int) (from, to int, ok bool) {
	start, end, ok := e.selectionRange()
	if !ok || row < start.Row || row > end.Row {
		return 0, 0, false
	}
	line := e.buffer.Line(row)
	if line == nil {
		return 0, 0, false
	}
	from, to = 0, line.ByteLen()
	if row == start.Row {
		from = line.ByteOffset(start.Col)
	}
	if row == end.Row {
		to = line.ByteOffset(end.Col)
	}
	if from >= to {
		return 0, 0, false
	}
	return from, to, true
}

func (e *editor) SelectedText() string {
	start, end, ok := e.selectionRange()
	if !ok {
		return ""
	}
	var sb strings.Builder
	for row := start.Row; row <= end.Row; row++ {
		if row > start.Row {
			sb.WriteByte('\n')
		}
		if from, to, ok := e.selectionSpan(row); ok {
			sb.WriteString(e.buffer.Line(row).String()[from:to])
		}
	}
	return sb.String()
}

func (e *editor) CopySelection() error {
	if e.selection == nil {
		return ErrNoSelection
	}
	if e.clipboard == nil {
		return ErrNoClipboard
	}
	if err := e.clipboard.Write(e.SelectedText()); err != nil {
		return fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}
	e.DispatchMessage(SelectionCopiedMessage)
	return nil
}

// annotationsFor collects the highlight ranges for one row for the current
// render pass: search matches plus the selection. Overlaps are resolved by
// the span iterator's precedence rule.
func (e *editor) annotationsFor(row int) []Annotation {
	var out []Annotation
	if e.search != nil {
		out = append(out, e.search.annotationsFor(row)...)
	}
	if from, to, ok := e.selectionSpan(row); ok {
		out = append(out, Annotation{Type: AnnotationSelection, Start: from, End: to})
	}
	return out
}
