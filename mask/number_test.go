package mask

import (
	"strings"
	"testing"
)

func numberSpan(t *testing.T, pattern string) []Token {
	t.Helper()
	tokens, err := Parse(pattern)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	return tokens[:len(tokens)-1]
}

func rawSlots(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func TestRemapNumber_GroupingAndZeroFill(t *testing.T) {
	tokens := numberSpan(t, "###,##0.0##")

	cases := []struct {
		raw  string
		want string
	}{
		{raw: "      0.0  ", want: "      0.0  "},
		{raw: "      4.0  ", want: "      4.0  "},
		{raw: " 1 2 34.   ", want: "  1,234.0  "},
		{raw: "1234   .5  ", want: "  1,234.5  "},
		{raw: "      0.25 ", want: "      0.25 "},
	}
	for _, tc := range cases {
		got, err := remapNumber(tokens, rawSlots(tc.raw))
		if err != nil {
			t.Fatalf("remap %q: %v", tc.raw, err)
		}
		if s := strings.Join(got, ""); s != tc.want {
			t.Fatalf("remap %q = %q, want %q", tc.raw, s, tc.want)
		}
	}
}

func TestRemapNumber_Idempotent(t *testing.T) {
	tokens := numberSpan(t, "###,##0.0##")
	raws := []string{
		"      0.0  ",
		"  1,234.5  ",
		" 12 34 .567",
		"5      .   ",
	}
	for _, raw := range raws {
		once, err := remapNumber(tokens, rawSlots(raw))
		if err != nil {
			t.Fatalf("remap %q: %v", raw, err)
		}
		twice, err := remapNumber(tokens, once)
		if err != nil {
			t.Fatalf("second remap of %q: %v", raw, err)
		}
		if !equalSlots(once, twice) {
			t.Fatalf("remap not idempotent for %q: %q vs %q", raw, strings.Join(once, ""), strings.Join(twice, ""))
		}
	}
}

func TestRemapNumber_LeadingZeros(t *testing.T) {
	// Blank-filled field: typed zeros are content and survive the round
	// trip, so the remap stays a fixpoint.
	tokens := numberSpan(t, "9999")
	got, err := remapNumber(tokens, rawSlots("  01"))
	if err != nil {
		t.Fatalf("remap: %v", err)
	}
	if s := strings.Join(got, ""); s != "  01" {
		t.Fatalf("remap = %q, want %q", s, "  01")
	}

	// Zero-filled field: a leading zero is fill and is dropped.
	tokens = numberSpan(t, "##0")
	got, err = remapNumber(tokens, rawSlots(" 01"))
	if err != nil {
		t.Fatalf("remap zero-filled: %v", err)
	}
	if s := strings.Join(got, ""); s != "  1" {
		t.Fatalf("remap zero-filled = %q, want %q", s, "  1")
	}
}

func TestRemapNumber_InlineSign(t *testing.T) {
	tokens := numberSpan(t, "###.##")

	got, err := remapNumber(tokens, rawSlots("5 -.  "))
	if err != nil {
		t.Fatalf("remap: %v", err)
	}
	if s := strings.Join(got, ""); s != " -5.  " {
		t.Fatalf("remap = %q, want %q", s, " -5.  ")
	}

	// A full integer part leaves no slot for the sign.
	if _, err := remapNumber(tokens, rawSlots("123.- ")); err == nil {
		t.Fatalf("sign without room must fail")
	}
}

func TestRemapNumber_DedicatedSignSlot(t *testing.T) {
	tokens := numberSpan(t, "-999")

	got, err := remapNumber(tokens, rawSlots("- 47"))
	if err != nil {
		t.Fatalf("remap: %v", err)
	}
	if s := strings.Join(got, ""); s != "- 47" {
		t.Fatalf("remap = %q, want %q", s, "- 47")
	}

	got, err = remapNumber(tokens, rawSlots("  47"))
	if err != nil {
		t.Fatalf("remap positive: %v", err)
	}
	if s := strings.Join(got, ""); s != "  47" {
		t.Fatalf("remap positive = %q, want %q", s, "  47")
	}
}

func TestRemapNumber_ExactFit(t *testing.T) {
	tokens := numberSpan(t, "999")
	if _, err := remapNumber(tokens, rawSlots("123")); err != nil {
		t.Fatalf("exact fit must pass: %v", err)
	}

	tokens = numberSpan(t, "99")
	if _, err := remapNumber(tokens, rawSlots("12")); err != nil {
		t.Fatalf("exact fit must pass: %v", err)
	}
}
