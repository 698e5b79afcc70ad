package core

// MatchPos is one search hit: the line it occurs on and the byte offset of
// the match start within that line.
type MatchPos struct {
	Row  int
	Byte int
}

// SearchInfo holds the state of an active search: the query, the ordered
// match set, the current match index and the cursor/scroll snapshot to
// restore on cancellation. It exists only between entering and leaving
// search mode.
type SearchInfo struct {
	query      string
	matches    []MatchPos
	current    int // index into matches, -1 when none
	prevCursor Cursor
	prevScroll ScrollOffset
}

func newSearchInfo(cursor Cursor, scroll ScrollOffset) *SearchInfo {
	return &SearchInfo{current: -1, prevCursor: cursor, prevScroll: scroll}
}

// rescan rebuilds the match set for the current query in document reading
// order (top to bottom, left to right) and selects the first match at or
// after the snapshotted cursor position, the first match overall if none
// qualifies, or none when the set is empty. An empty query yields an empty
// set, not an error.
func (s *SearchInfo) rescan(buffer Buffer) {
	s.matches = s.matches[:0]
	s.current = -1
	if s.query == "" {
		return
	}

	for row := 0; row < buffer.LineCount(); row++ {
		line := buffer.Line(row)
		for _, offset := range line.FindAll(s.query) {
			s.matches = append(s.matches, MatchPos{Row: row, Byte: offset})
		}
	}
	if len(s.matches) == 0 {
		return
	}

	s.current = 0
	anchor := s.prevCursor.Position
	for i, match := range s.matches {
		pos := matchPosition(buffer, match)
		if !pos.Less(anchor) {
			s.current = i
			break
		}
	}
}

// next advances the current match circularly; no-op on an empty set.
func (s *SearchInfo) next() {
	if len(s.matches) == 0 {
		return
	}
	if s.current < 0 {
		s.current = 0
		return
	}
	s.current = (s.current + 1) % len(s.matches)
}

// prev retreats the current match circularly; no-op on an empty set.
func (s *SearchInfo) prev() {
	if len(s.matches) == 0 {
		return
	}
	if s.current < 0 {
		s.current = 0
		return
	}
	s.current = (s.current - 1 + len(s.matches)) % len(s.matches)
}

// currentMatch returns the current match, or false when none is selected.
func (s *SearchInfo) currentMatch() (MatchPos, bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return MatchPos{}, false
	}
	return s.matches[s.current], true
}

// annotationsFor emits highlight ranges for every match on the given row.
// The current match is tagged SelectedMatch, the rest Match.
func (s *SearchInfo) annotationsFor(row int) []Annotation {
	if s.query == "" {
		return nil
	}
	var out []Annotation
	for i, match := range s.matches {
		if match.Row != row {
			continue
		}
		kind := AnnotationMatch
		if i == s.current {
			kind = AnnotationSelectedMatch
		}
		out = append(out, Annotation{
			Type:  kind,
			Start: match.Byte,
			End:   match.Byte + len(s.query),
		})
	}
	return out
}

// matchPosition converts a match to a cursor position in grapheme units.
func matchPosition(buffer Buffer, match MatchPos) Position {
	line := buffer.Line(match.Row)
	if line == nil {
		return Position{Row: match.Row}
	}
	return Position{Row: match.Row, Col: line.GraphemeIndexAtByte(match.Byte)}
}
