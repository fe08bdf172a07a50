package buffer

// Edit describes one applied replacement: the normalized document range it
// removed and the position where the inserted text ends. It carries enough
// to remap any other position through the edit without rescanning the
// document.
type Edit struct {
	Removed   Range
	InsertEnd Pos
}

// ShrinkPos remaps p through the removal of r: positions before the range
// are untouched, positions inside collapse to the range start, positions
// after it move up and left by the removed extent.
func ShrinkPos(p Pos, r Range) Pos {
	r = NormalizeRange(r)
	switch {
	case ComparePos(p, r.Start) <= 0:
		return p
	case ComparePos(p, r.End) < 0:
		return r.Start
	}
	if p.Row == r.End.Row {
		return Pos{Row: r.Start.Row, Col: r.Start.Col + (p.Col - r.End.Col)}
	}
	return Pos{Row: p.Row - (r.End.Row - r.Start.Row), Col: p.Col}
}

// ExpandPos remaps p through an insertion at `at` whose text ends at `end`:
// positions at or before the insertion point are untouched, positions after
// it move down and right by the inserted extent.
func ExpandPos(p, at, end Pos) Pos {
	if ComparePos(p, at) <= 0 {
		return p
	}
	if p.Row == at.Row {
		return Pos{Row: end.Row, Col: end.Col + (p.Col - at.Col)}
	}
	return Pos{Row: p.Row + (end.Row - at.Row), Col: p.Col}
}

// ShiftPos remaps p through a full replacement edit: positions before the
// removed range are untouched, positions inside collapse to its start, and
// positions at or after its end land relative to the end of the inserted
// text. A range spanning exactly the replaced text thus maps onto the
// replacement instead of collapsing.
func ShiftPos(p Pos, e Edit) Pos {
	r := NormalizeRange(e.Removed)
	switch {
	case ComparePos(p, r.Start) <= 0:
		return p
	case ComparePos(p, r.End) < 0:
		return r.Start
	}
	if p.Row == r.End.Row {
		return Pos{Row: e.InsertEnd.Row, Col: e.InsertEnd.Col + (p.Col - r.End.Col)}
	}
	return Pos{Row: p.Row + (e.InsertEnd.Row - r.End.Row), Col: p.Col}
}

// ShiftRange remaps both ends of r through e; the result stays normalized.
func ShiftRange(r Range, e Edit) Range {
	return NormalizeRange(Range{
		Start: ShiftPos(r.Start, e),
		End:   ShiftPos(r.End, e),
	})
}
