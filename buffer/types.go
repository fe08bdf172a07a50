package buffer

import (
	"errors"
	"fmt"
)

// Pos points into the logical document by (row, col) in grapheme clusters.
// Row and Col are 0-based.
type Pos struct {
	Row int
	Col int
}

// Range is a half-open selection in document coordinates: [Start, End).
// Start <= End in document order.
type Range struct {
	Start Pos
	End   Pos
}

// ErrInvalidRange is returned by NewRange when start sorts after end.
var ErrInvalidRange = errors.New("buffer: range start after end")

// NewRange builds a Range and rejects start > end in (row, col) order.
func NewRange(start, end Pos) (Range, error) {
	if ComparePos(start, end) > 0 {
		return Range{}, fmt.Errorf("%w: (%d,%d) > (%d,%d)",
			ErrInvalidRange, start.Row, start.Col, end.Row, end.Col)
	}
	return Range{Start: start, End: end}, nil
}

// MustRange is NewRange but panics on an invalid range. For literals whose
// ordering is known at the call site.
func MustRange(start, end Pos) Range {
	r, err := NewRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// ComparePos orders positions lexicographically by (row, col).
func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

// NormalizeRange swaps Start and End when they are out of document order.
func NormalizeRange(r Range) Range {
	if ComparePos(r.Start, r.End) <= 0 {
		return r
	}
	return Range{Start: r.End, End: r.Start}
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies in the half-open range.
func (r Range) Contains(p Pos) bool {
	return ComparePos(r.Start, p) <= 0 && ComparePos(p, r.End) < 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by rowCount and lineLen.
//
// - rowCount is the number of logical lines (rows).
// - lineLen(row) returns the grapheme length of the given row.
//
// The returned Pos always satisfies:
// - 0 <= Row < rowCount (with rowCount treated as at least 1)
// - 0 <= Col <= lineLen(Row)
func ClampPos(p Pos, rowCount int, lineLen func(row int) int) Pos {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Row, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Row: row, Col: col}
}

func ClampRange(r Range, rowCount int, lineLen func(row int) int) Range {
	return Range{
		Start: ClampPos(r.Start, rowCount, lineLen),
		End:   ClampPos(r.End, rowCount, lineLen),
	}
}
