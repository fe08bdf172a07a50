package buffer

import (
	"reflect"
	"testing"
)

func TestStyleMap_AddKeepsSortedOrder(t *testing.T) {
	var m StyleMap
	m.Add(MustRange(Pos{0, 5}, Pos{0, 9}), 2)
	m.Add(MustRange(Pos{0, 0}, Pos{0, 3}), 1)
	m.Add(MustRange(Pos{0, 5}, Pos{0, 7}), 3)
	m.Add(MustRange(Pos{1, 1}, Pos{1, 1}), 9) // empty, dropped

	if got, want := m.Len(), 3; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	var starts []Pos
	for _, s := range m.Spans() {
		starts = append(starts, s.Range.Start)
	}
	want := []Pos{{0, 0}, {0, 5}, {0, 5}}
	if !reflect.DeepEqual(starts, want) {
		t.Fatalf("starts=%v, want %v", starts, want)
	}
	// Equal starts tie-break by end.
	if m.Spans()[1].ID != 3 || m.Spans()[2].ID != 2 {
		t.Fatalf("tie break wrong: %+v", m.Spans())
	}
}

func TestStyleMap_StylesAtOverlapping(t *testing.T) {
	var m StyleMap
	m.Add(MustRange(Pos{0, 0}, Pos{0, 5}), 1)
	m.Add(MustRange(Pos{0, 2}, Pos{0, 6}), 2)
	m.Add(MustRange(Pos{0, 4}, Pos{0, 8}), 3)
	m.Add(MustRange(Pos{1, 0}, Pos{1, 5}), 4)

	cases := []struct {
		p    Pos
		want []StyleID
	}{
		{Pos{0, 0}, []StyleID{1}},
		{Pos{0, 3}, []StyleID{1, 2}},
		{Pos{0, 4}, []StyleID{1, 2, 3}},
		{Pos{0, 5}, []StyleID{2, 3}},
		{Pos{0, 7}, []StyleID{3}},
		{Pos{1, 2}, []StyleID{4}},
		{Pos{2, 0}, nil},
	}
	for _, tc := range cases {
		got := m.StylesAt(tc.p)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("StylesAt(%+v)=%v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestStyleMap_ApplyEditShiftsSpans(t *testing.T) {
	var m StyleMap
	m.Add(MustRange(Pos{0, 0}, Pos{0, 3}), 1)
	m.Add(MustRange(Pos{0, 4}, Pos{0, 7}), 2)
	m.Add(MustRange(Pos{0, 8}, Pos{0, 13}), 3)

	// Replace [4,7) with a single grapheme.
	m.ApplyEdit(Edit{Removed: MustRange(Pos{0, 4}, Pos{0, 7}), InsertEnd: Pos{0, 5}})

	spans := m.Spans()
	if got, want := spans[0].Range, MustRange(Pos{0, 0}, Pos{0, 3}); got != want {
		t.Fatalf("span 1=%+v, want %+v", got, want)
	}
	if got, want := spans[1].Range, MustRange(Pos{0, 4}, Pos{0, 5}); got != want {
		t.Fatalf("span 2=%+v, want %+v", got, want)
	}
	if got, want := spans[2].Range, MustRange(Pos{0, 6}, Pos{0, 11}); got != want {
		t.Fatalf("span 3=%+v, want %+v", got, want)
	}

	// Deleting a span's whole extent drops it.
	m.ApplyEdit(Edit{Removed: MustRange(Pos{0, 4}, Pos{0, 5}), InsertEnd: Pos{0, 4}})
	if got, want := m.Len(), 2; got != want {
		t.Fatalf("len after collapse=%d, want %d", got, want)
	}
}

func TestStyleMap_Remove(t *testing.T) {
	var m StyleMap
	m.Add(MustRange(Pos{0, 0}, Pos{0, 2}), 1)
	m.Add(MustRange(Pos{0, 3}, Pos{0, 5}), 2)
	m.Add(MustRange(Pos{0, 6}, Pos{0, 8}), 1)

	m.Remove(1)
	if got, want := m.Len(), 1; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if m.Spans()[0].ID != 2 {
		t.Fatalf("wrong span kept: %+v", m.Spans())
	}
}
