package core

import (
	"errors"
	"strings"
	"testing"
)

type fakeClipboard struct {
	content string
	err     error
}

func (c *fakeClipboard) Write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.content = text
	return nil
}

func (c *fakeClipboard) Read() (string, error) {
	return c.content, c.err
}

func newTestEditor(content string) *editor {
	e := New(&fakeClipboard{}).(*editor)
	e.SetContent(content)
	e.Resize(Size{Width: 40, Height: 10})
	return e
}

func TestEditorInsertRune(t *testing.T) {
	e := newTestEditor("hllo")
	e.Move(MoveRight)
	e.InsertRune('e')

	if got, want := e.Lines()[0], "hello"; got != want {
		t.Fatalf("line: got %q, want %q", got, want)
	}
	if got, want := e.Cursor().Position.Col, 2; got != want {
		t.Fatalf("cursor col: got %d, want %d", got, want)
	}
	if !e.Buffer().IsModified() {
		t.Fatal("buffer should be modified after insert")
	}
}

func TestEditorInsertCombiningMark(t *testing.T) {
	e := newTestEditor("")
	e.InsertRune('a')
	e.InsertRune('́') // combining acute merges into the previous cluster

	line := e.Buffer().Line(0)
	if got, want := line.String(), "á"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := line.GraphemeCount(), 1; got != want {
		t.Fatalf("grapheme count: got %d, want %d", got, want)
	}
	if got, want := e.Cursor().Position.Col, 1; got != want {
		t.Fatalf("cursor col: got %d, want %d", got, want)
	}

	e.DeleteBackward()
	if got := e.Buffer().Line(0).String(); got != "" {
		t.Fatalf("backspace should remove the cluster, got %q", got)
	}
}

func TestEditorInsertCombiningMarkMidLine(t *testing.T) {
	e := newTestEditor("ab")
	e.Move(MoveRight)
	e.InsertRune('́')

	line := e.Buffer().Line(0)
	if got, want := line.String(), "áb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	// No new cluster appeared, so the cursor still sits before "b".
	if got, want := e.Cursor().Position.Col, 1; got != want {
		t.Fatalf("cursor col: got %d, want %d", got, want)
	}
}

func TestEditorInsertNewline(t *testing.T) {
	e := newTestEditor("hello")
	e.Move(MoveRight)
	e.Move(MoveRight)
	e.InsertNewline()

	lines := e.Lines()
	if len(lines) != 2 || lines[0] != "he" || lines[1] != "llo" {
		t.Fatalf("lines after split: got %v, want [he llo]", lines)
	}
	if got := e.Cursor().Position; got != (Position{Row: 1, Col: 0}) {
		t.Fatalf("cursor after split: got %+v, want row 1 col 0", got)
	}
}

func TestEditorDeleteBackwardJoinsLines(t *testing.T) {
	e := newTestEditor("he\nllo")
	e.Move(MoveDown)
	e.DeleteBackward()

	lines := e.Lines()
	if len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("lines after join: got %v, want [hello]", lines)
	}
	if got := e.Cursor().Position; got != (Position{Row: 0, Col: 2}) {
		t.Fatalf("cursor after join: got %+v, want row 0 col 2", got)
	}
}

func TestEditorDeleteForwardAtLineEnd(t *testing.T) {
	e := newTestEditor("he\nllo")
	e.Move(MoveEndOfLine)
	e.DeleteForward()

	lines := e.Lines()
	if len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("lines after forward join: got %v, want [hello]", lines)
	}
}

func TestEditorDeleteBackwardAtDocumentStart(t *testing.T) {
	e := newTestEditor("hello")
	e.DeleteBackward()
	if got, want := e.Lines()[0], "hello"; got != want {
		t.Fatalf("delete at start: got %q, want %q", got, want)
	}
}

func TestEditorVerticalMovementKeepsPreferredColumn(t *testing.T) {
	e := newTestEditor("a long first line\nab\nanother long line")
	for i := 0; i < 6; i++ {
		e.Move(MoveRight)
	}

	e.Move(MoveDown)
	if got, want := e.Cursor().Position.Col, 2; got != want {
		t.Fatalf("col on short line: got %d, want %d", got, want)
	}

	e.Move(MoveDown)
	if got, want := e.Cursor().Position.Col, 6; got != want {
		t.Fatalf("col restored on long line: got %d, want %d", got, want)
	}
}

func TestEditorVerticalMovementOverWideGlyphs(t *testing.T) {
	e := newTestEditor("abcdef\n🎉🎉🎉")
	for i := 0; i < 3; i++ {
		e.Move(MoveRight)
	}

	// Display column 3 falls inside the second emoji; the cursor resolves
	// to the boundary at or before it.
	e.Move(MoveDown)
	if got, want := e.Cursor().Position.Col, 1; got != want {
		t.Fatalf("col over wide glyphs: got %d, want %d", got, want)
	}
}

func TestEditorHorizontalMovementCrossesLines(t *testing.T) {
	e := newTestEditor("ab\ncd")
	e.Move(MoveEndOfLine)
	e.Move(MoveRight)
	if got := e.Cursor().Position; got != (Position{Row: 1, Col: 0}) {
		t.Fatalf("right at line end: got %+v, want row 1 col 0", got)
	}
	e.Move(MoveLeft)
	if got := e.Cursor().Position; got != (Position{Row: 0, Col: 2}) {
		t.Fatalf("left at line start: got %+v, want row 0 col 2", got)
	}
}

func TestEditorMoveClampsAtDocumentEdges(t *testing.T) {
	e := newTestEditor("ab\ncd")
	e.Move(MoveUp)
	e.Move(MoveLeft)
	if got := e.Cursor().Position; got != (Position{Row: 0, Col: 0}) {
		t.Fatalf("clamp at start: got %+v", got)
	}
	e.Move(MovePageDown)
	e.Move(MovePageDown)
	if got, want := e.Cursor().Position.Row, 1; got != want {
		t.Fatalf("clamp at end: got row %d, want %d", got, want)
	}
}

func TestEditorSelection(t *testing.T) {
	e := newTestEditor("hello\nworld")
	e.StartSelection()
	e.Move(MoveDown)
	e.Move(MoveRight)
	e.Move(MoveRight)

	if got, want := e.SelectedText(), "hello\nwo"; got != want {
		t.Fatalf("selected text: got %q, want %q", got, want)
	}

	first := e.annotationsFor(0)
	if len(first) != 1 || first[0].Type != AnnotationSelection {
		t.Fatalf("first row annotations: got %v, want one selection", first)
	}
	if first[0].Start != 0 || first[0].End != 5 {
		t.Fatalf("first row range: got [%d,%d), want [0,5)", first[0].Start, first[0].End)
	}

	second := e.annotationsFor(1)
	if len(second) != 1 || second[0].Start != 0 || second[0].End != 2 {
		t.Fatalf("second row annotations: got %v, want [0,2)", second)
	}
}

func TestEditorSelectionBackwards(t *testing.T) {
	e := newTestEditor("hello")
	e.Move(MoveEndOfLine)
	e.StartSelection()
	e.Move(MoveStartOfLine)

	if got, want := e.SelectedText(), "hello"; got != want {
		t.Fatalf("backward selection: got %q, want %q", got, want)
	}
}

func TestEditorCopySelection(t *testing.T) {
	clip := &fakeClipboard{}
	e := New(clip).(*editor)
	e.SetContent("hello")
	e.Resize(Size{Width: 40, Height: 10})

	if err := e.CopySelection(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("copy without selection: got %v, want ErrNoSelection", err)
	}

	e.StartSelection()
	e.Move(MoveEndOfLine)
	if err := e.CopySelection(); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if clip.content != "hello" {
		t.Fatalf("clipboard content: got %q, want hello", clip.content)
	}

	// The copy message is dispatched on the signal channel.
	select {
	case signal := <-e.Signals():
		msg, ok := signal.(MessageSignal)
		if !ok || msg.Value() != SelectionCopiedMessage {
			t.Fatalf("signal: got %#v, want copy message", signal)
		}
	default:
		t.Fatal("expected a message signal after copy")
	}
}

func TestEditorCopyFailureWraps(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	e := New(clip).(*editor)
	e.SetContent("hello")
	e.StartSelection()
	e.Move(MoveEndOfLine)

	err := e.CopySelection()
	if !errors.Is(err, ErrCopyFailed) {
		t.Fatalf("copy error: got %v, want ErrCopyFailed", err)
	}
	if !strings.Contains(err.Error(), "no display") {
		t.Fatalf("copy error should carry the cause, got %v", err)
	}
}

func TestEditorEditClearsSelection(t *testing.T) {
	e := newTestEditor("hello")
	e.StartSelection()
	e.Move(MoveRight)
	e.InsertRune('x')
	if e.HasSelection() {
		t.Fatal("insert should clear the selection")
	}
}

func TestEditorSetContentResetsState(t *testing.T) {
	e := newTestEditor("one\ntwo")
	e.Move(MoveDown)
	e.EnterSearch()
	e.StartSelection()

	e.SetContent("fresh")
	if got := e.Cursor().Position; got != (Position{}) {
		t.Fatalf("cursor after SetContent: got %+v, want origin", got)
	}
	if e.SearchActive() || e.HasSelection() {
		t.Fatal("SetContent should reset search and selection")
	}
	if e.Buffer().IsModified() {
		t.Fatal("fresh content should not be modified")
	}
}

func TestEditorStatus(t *testing.T) {
	e := newTestEditor("one\ntwo\nthree")
	e.Move(MoveDown)
	e.InsertRune('x')

	status := e.Status()
	if status.LineCount != 3 {
		t.Fatalf("line count: got %d, want 3", status.LineCount)
	}
	if status.Position.Row != 1 {
		t.Fatalf("status row: got %d, want 1", status.Position.Row)
	}
	if !status.Modified {
		t.Fatal("status should report modified")
	}
}
