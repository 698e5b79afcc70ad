package core

// Resize sets the viewport size in terminal cells and re-anchors the scroll
// offset so the cursor stays visible.
func (e *editor) Resize(size Size) {
	if size.Width < 1 {
		size.Width = 1
	}
	if size.Height < 1 {
		size.Height = 1
	}
	e.size = size
	e.scrollToCursor()
}

// Scroll returns the current viewport origin.
func (e *editor) Scroll() ScrollOffset {
	return e.scroll
}

// scrollToCursor moves the viewport the minimal distance needed to keep the
// cursor inside it. Rows scroll in lines, columns in display units.
func (e *editor) scrollToCursor() {
	row := e.cursor.Position.Row
	if row < e.scroll.Row {
		e.scroll.Row = row
	} else if row >= e.scroll.Row+e.size.Height {
		e.scroll.Row = row - e.size.Height + 1
	}
	if e.scroll.Row < 0 {
		e.scroll.Row = 0
	}

	col := 0
	if line := e.buffer.Line(row); line != nil {
		col = line.WidthUpTo(e.cursor.Position.Col)
	}
	if col < e.scroll.Col {
		e.scroll.Col = col
	} else if col >= e.scroll.Col+e.size.Width {
		e.scroll.Col = col - e.size.Width + 1
	}
	if e.scroll.Col < 0 {
		e.scroll.Col = 0
	}
}

// VisibleRows projects the viewport onto the document: for each visible
// screen row it yields the styled spans covering the visible column range of
// that line. Rows past the end of the document yield nil.
func (e *editor) VisibleRows() [][]StyledSpan {
	rows := make([][]StyledSpan, e.size.Height)
	for i := 0; i < e.size.Height; i++ {
		row := e.scroll.Row + i
		line := e.buffer.Line(row)
		if line == nil {
			continue
		}
		it := NewSpanIterator(line, e.annotationsFor(row), e.scroll.Col, e.scroll.Col+e.size.Width)
		spans := it.Collect()
		if spans == nil {
			// Distinguish an empty visible window from a row past the
			// end of the document, which stays nil.
			spans = []StyledSpan{}
		}
		rows[i] = spans
	}
	return rows
}

// ScreenCursor returns the cursor position in viewport coordinates: the
// screen row and the display column relative to the scroll offset.
func (e *editor) ScreenCursor() (row, col int) {
	row = e.cursor.Position.Row - e.scroll.Row
	col = -e.scroll.Col
	if line := e.buffer.Line(e.cursor.Position.Row); line != nil {
		col += line.WidthUpTo(e.cursor.Position.Col)
	}
	return row, col
}
