package core

// Cursor is the editing position: a document Position in grapheme units plus
// the preferred display column for vertical movement (sticky column). The
// column may rest one past the last grapheme of a line, where insertions
// append.
type Cursor struct {
	Position  Position
	Preferred int // display column to aim for when moving vertically
}

// clamp keeps the cursor inside the document. The column is clamped to the
// grapheme count of its line, never an error.
func (c *Cursor) clamp(buffer Buffer) {
	if c.Position.Row < 0 {
		c.Position.Row = 0
	}
	if c.Position.Row >= buffer.LineCount() {
		c.Position.Row = buffer.LineCount() - 1
	}
	line := buffer.Line(c.Position.Row)
	if c.Position.Col < 0 {
		c.Position.Col = 0
	}
	if line != nil && c.Position.Col > line.GraphemeCount() {
		c.Position.Col = line.GraphemeCount()
	}
}

// rememberCol records the cursor's current display column as the preferred
// column for subsequent vertical movement.
func (c *Cursor) rememberCol(buffer Buffer) {
	if line := buffer.Line(c.Position.Row); line != nil {
		c.Preferred = line.WidthUpTo(c.Position.Col)
	}
}

// moveLeft steps one grapheme left, crossing to the end of the previous line
// at a line start.
func (c *Cursor) moveLeft(buffer Buffer) {
	if c.Position.Col > 0 {
		c.Position.Col--
	} else if c.Position.Row > 0 {
		c.Position.Row--
		if line := buffer.Line(c.Position.Row); line != nil {
			c.Position.Col = line.GraphemeCount()
		}
	}
	c.rememberCol(buffer)
}

// moveRight steps one grapheme right, crossing to the start of the next line
// at a line end.
func (c *Cursor) moveRight(buffer Buffer) {
	line := buffer.Line(c.Position.Row)
	if line != nil && c.Position.Col < line.GraphemeCount() {
		c.Position.Col++
	} else if c.Position.Row+1 < buffer.LineCount() {
		c.Position.Row++
		c.Position.Col = 0
	}
	c.rememberCol(buffer)
}

// moveVertical moves by delta rows, resolving the preferred display column
// to the nearest grapheme boundary on the target line.
func (c *Cursor) moveVertical(buffer Buffer, delta int) {
	c.Position.Row += delta
	c.clamp(buffer)
	if line := buffer.Line(c.Position.Row); line != nil {
		c.Position.Col = line.GraphemeIndexAtColumn(c.Preferred)
	}
}

func (c *Cursor) moveStartOfLine(buffer Buffer) {
	c.Position.Col = 0
	c.Preferred = 0
}

func (c *Cursor) moveEndOfLine(buffer Buffer) {
	if line := buffer.Line(c.Position.Row); line != nil {
		c.Position.Col = line.GraphemeCount()
	}
	c.rememberCol(buffer)
}
