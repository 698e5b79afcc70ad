package core

// Position is a location in the document: a zero-indexed row and a column
// counted in grapheme clusters.
type Position struct {
	Row int
	Col int
}

// Less orders positions in document reading order.
func (p Position) Less(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Size is a viewport extent in terminal cells.
type Size struct {
	Width  int
	Height int
}

// ScrollOffset is the viewport origin: a row in lines and a column in
// display units. It is recomputed from the cursor on every command.
type ScrollOffset struct {
	Row int
	Col int
}

// Move identifies a cursor movement command, already decoded from raw key
// events by the input layer.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveStartOfLine
	MoveEndOfLine
)

// DocumentStatus is the document metadata shown by the status bar.
type DocumentStatus struct {
	LineCount int
	Position  Position
	Modified  bool
}

// Editor is the core controller: it owns the document, the cursor, the
// scroll offset and the search state, and processes one decoded input
// command at a time to completion. All operations are total; out-of-range
// indices clamp instead of failing.
type Editor interface {
	// Document access
	Buffer() Buffer
	SetContent(content string)
	Lines() []string

	// Editing
	InsertRune(r rune)
	InsertNewline()
	DeleteBackward()
	DeleteForward()
	Move(m Move)

	// Search state machine
	EnterSearch()
	SearchAppend(r rune)
	SearchDeleteChar()
	SearchNext()
	SearchPrev()
	CommitSearch()
	CancelSearch()
	SearchActive() bool
	SearchQuery() string
	MatchCount() int
	CurrentMatch() int // zero-based index into the match set, -1 when none

	// Selection
	StartSelection()
	ClearSelection()
	HasSelection() bool
	SelectedText() string
	CopySelection() error

	// Viewport projection
	Resize(size Size)
	VisibleRows() [][]StyledSpan
	ScreenCursor() (row, col int)
	Scroll() ScrollOffset

	Status() DocumentStatus
	Cursor() Cursor

	// Signals consumed by the UI layer
	Signals() <-chan Signal
	DispatchMessage(text string)
	DispatchError(err error)
}

// Clipboard abstracts the system clipboard so the core stays free of
// platform concerns.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}
