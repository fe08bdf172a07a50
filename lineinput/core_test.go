package lineinput

import "testing"

func TestCore_TypeAndDelete(t *testing.T) {
	c := New()
	for _, g := range []string{"h", "é", "l", "l", "o"} {
		if !c.InsertChar(g) {
			t.Fatalf("insert %q rejected", g)
		}
	}
	if got, want := c.Value(), "héllo"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got, want := c.Cursor(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}

	c.RemovePrev()
	if got, want := c.Value(), "héll"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	c.SetCursor(0, false)
	c.RemoveNext()
	if got, want := c.Value(), "éll"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if c.RemovePrev() {
		t.Fatalf("remove prev at 0 must be a no-op")
	}
}

func TestCore_InsertReplacesSelection(t *testing.T) {
	c := New()
	c.SetValue("abcdef")
	c.SetCursor(1, false)
	c.SetCursor(4, true)

	c.InsertChar("X")
	if got, want := c.Value(), "aXef"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got, want := c.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if c.HasSelection() {
		t.Fatalf("selection must collapse after insert")
	}
}

func TestCore_ReplaceShiftsPositions(t *testing.T) {
	cases := []struct {
		name       string
		cursor     int
		anchor     int
		start, end int
		text       string
		wantCursor int
		wantAnchor int
		wantValue  string
	}{
		{
			name:   "after the range shifts by the delta",
			cursor: 8, anchor: 8,
			start: 2, end: 5, text: "Z",
			wantCursor: 6, wantAnchor: 6,
			wantValue: "abZfghij",
		},
		{
			name:   "before the range is untouched",
			cursor: 1, anchor: 1,
			start: 4, end: 6, text: "XY",
			wantCursor: 1, wantAnchor: 1,
			wantValue: "abcdXYghij",
		},
		{
			name:   "inside the range collapses to start after insert",
			cursor: 4, anchor: 4,
			start: 2, end: 6, text: "Q",
			wantCursor: 3, wantAnchor: 3,
			wantValue: "abQghij",
		},
		{
			name:   "at the range start stays put",
			cursor: 2, anchor: 2,
			start: 2, end: 4, text: "PQR",
			wantCursor: 2, wantAnchor: 2,
			wantValue: "abPQRefghij",
		},
		{
			name:   "pure insertion shifts the tail",
			cursor: 9, anchor: 3,
			start: 3, end: 3, text: "++",
			wantCursor: 11, wantAnchor: 3,
			wantValue: "abc++defghij",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			c.SetValue("abcdefghij")
			c.cursor = tc.cursor
			c.anchor = tc.anchor

			c.Replace(tc.start, tc.end, tc.text)
			if got := c.Value(); got != tc.wantValue {
				t.Fatalf("value=%q, want %q", got, tc.wantValue)
			}
			if c.Cursor() != tc.wantCursor || c.Anchor() != tc.wantAnchor {
				t.Fatalf("cursor/anchor=(%d,%d), want (%d,%d)",
					c.Cursor(), c.Anchor(), tc.wantCursor, tc.wantAnchor)
			}
		})
	}
}

func TestCore_WordMovement(t *testing.T) {
	c := New()
	c.SetValue("foo  bar42 !baz")
	c.SetCursor(0, false)

	stops := []int{3, 5, 10, 12, 15}
	for _, want := range stops {
		c.MoveWordNext(false)
		if got := c.Cursor(); got != want {
			t.Fatalf("next word stop=%d, want %d", got, want)
		}
	}
	back := []int{12, 10, 5, 3, 0}
	for _, want := range back {
		c.MoveWordPrev(false)
		if got := c.Cursor(); got != want {
			t.Fatalf("prev word stop=%d, want %d", got, want)
		}
	}
}

func TestCore_SelectWord(t *testing.T) {
	c := New()
	c.SetValue("one two")
	c.SelectWord(5)
	start, end := c.Selection()
	if start != 4 || end != 7 {
		t.Fatalf("selection=(%d,%d), want (4,7)", start, end)
	}
	if got, want := c.SelectedText(), "two"; got != want {
		t.Fatalf("selected text=%q, want %q", got, want)
	}
}

func TestCore_OffsetFollowsCursor(t *testing.T) {
	c := New()
	c.SetValue("0123456789")
	c.SetWidth(4)

	c.SetCursor(9, false)
	if c.Offset() > c.Cursor() || c.Cursor() > c.Offset()+c.Width() {
		t.Fatalf("window lost cursor: offset=%d cursor=%d width=%d", c.Offset(), c.Cursor(), c.Width())
	}
	c.SetCursor(0, false)
	if c.Offset() != 0 {
		t.Fatalf("offset=%d, want 0", c.Offset())
	}
}

func TestCore_PasteMultiGrapheme(t *testing.T) {
	c := New()
	c.SetValue("ab")
	c.SetCursor(1, false)
	c.InsertText("x👩‍🚀y")
	if got, want := c.Value(), "ax👩‍🚀yb"; got != want {
		t.Fatalf("value=%q, want %q", got, want)
	}
	if got, want := c.Cursor(), 4; got != want {
		t.Fatalf("cursor=%d, want %d (grapheme indexed)", got, want)
	}
	if got, want := c.Len(), 5; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
}
