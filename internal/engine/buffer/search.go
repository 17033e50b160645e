package buffer

// FindAll returns the start position of every occurrence of query, in
// document order. Matching is literal and case-sensitive, compares the
// saved form of whole cells and never spans lines. Occurrences may overlap.
func (d *Document) FindAll(query string) []Position {
	needle := Segment(query)
	if len(needle) == 0 {
		return nil
	}
	var out []Position
	for i, l := range d.lines {
		for j := 0; j+len(needle) <= len(l.cells); j++ {
			if cellsMatch(l.cells[j:j+len(needle)], needle) {
				out = append(out, Position{Line: i, Cell: j})
			}
		}
	}
	return out
}

func cellsMatch(hay, needle []Cell) bool {
	for i := range needle {
		if hay[i].saved != needle[i].saved {
			return false
		}
	}
	return true
}

// NextMatch returns the index in matches of the first match strictly after
// from, wrapping to the first match. It returns -1 if matches is empty.
func NextMatch(matches []Position, from Position) int {
	if len(matches) == 0 {
		return -1
	}
	for i, m := range matches {
		if m.After(from) {
			return i
		}
	}
	return 0
}

// PrevMatch returns the index in matches of the last match strictly before
// from, wrapping to the last match. It returns -1 if matches is empty.
func PrevMatch(matches []Position, from Position) int {
	if len(matches) == 0 {
		return -1
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Before(from) {
			return i
		}
	}
	return len(matches) - 1
}

// FirstMatchFrom returns the index of the first match at or after from,
// wrapping to the first match. It returns -1 if matches is empty.
func FirstMatchFrom(matches []Position, from Position) int {
	if len(matches) == 0 {
		return -1
	}
	for i, m := range matches {
		if !m.Before(from) {
			return i
		}
	}
	return 0
}
