package buffer

import (
	"errors"
	"testing"
)

func TestNewRange_RejectsReversedEnds(t *testing.T) {
	if _, err := NewRange(Pos{Row: 5, Col: 2}, Pos{Row: 3, Col: 2}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err=%v, want ErrInvalidRange", err)
	}
	if _, err := NewRange(Pos{Row: 1, Col: 7}, Pos{Row: 1, Col: 4}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err=%v, want ErrInvalidRange", err)
	}

	r, err := NewRange(Pos{Row: 1, Col: 4}, Pos{Row: 1, Col: 4})
	if err != nil {
		t.Fatalf("empty range rejected: %v", err)
	}
	if !r.IsEmpty() {
		t.Fatalf("range %+v should be empty", r)
	}
}

func TestMustRange_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustRange with reversed ends must panic")
		}
	}()
	MustRange(Pos{Row: 5, Col: 2}, Pos{Row: 3, Col: 2})
}

func TestComparePos(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{Pos{0, 0}, Pos{0, 0}, 0},
		{Pos{0, 1}, Pos{0, 2}, -1},
		{Pos{1, 0}, Pos{0, 9}, 1},
		{Pos{2, 3}, Pos{2, 3}, 0},
		{Pos{3, 2}, Pos{5, 2}, -1},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%+v, %+v)=%d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: Pos{2, 5}, End: Pos{1, 0}})
	if r.Start != (Pos{1, 0}) || r.End != (Pos{2, 5}) {
		t.Fatalf("normalized=%+v", r)
	}
}

func TestRangeContains(t *testing.T) {
	r := MustRange(Pos{1, 2}, Pos{3, 0})
	for _, p := range []Pos{{1, 2}, {1, 9}, {2, 0}, {2, 99}} {
		if !r.Contains(p) {
			t.Fatalf("%+v should contain %+v", r, p)
		}
	}
	for _, p := range []Pos{{1, 1}, {3, 0}, {0, 5}, {3, 1}} {
		if r.Contains(p) {
			t.Fatalf("%+v should not contain %+v", r, p)
		}
	}
}

func TestClampPos(t *testing.T) {
	lineLen := func(row int) int { return []int{3, 0, 7}[row] }

	cases := []struct {
		in   Pos
		want Pos
	}{
		{Pos{-1, -1}, Pos{0, 0}},
		{Pos{0, 9}, Pos{0, 3}},
		{Pos{1, 2}, Pos{1, 0}},
		{Pos{9, 2}, Pos{2, 2}},
		{Pos{2, 100}, Pos{2, 7}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 3, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%+v)=%+v, want %+v", tc.in, got, tc.want)
		}
	}
}
