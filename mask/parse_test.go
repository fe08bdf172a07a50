package mask

import "testing"

func TestParse_DateMask(t *testing.T) {
	tokens, err := Parse("99/99/9999")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := len(tokens), 11; got != want {
		t.Fatalf("token count=%d, want %d", got, want)
	}
	if tokens[10].Kind != KindNone {
		t.Fatalf("last token kind=%v, want sentinel", tokens[10].Kind)
	}
	for _, i := range []int{0, 1, 3, 4, 6, 7, 8, 9} {
		if tokens[i].Kind != KindDigit {
			t.Fatalf("token %d kind=%v, want digit", i, tokens[i].Kind)
		}
		if !tokens[i].RightToLeft {
			t.Fatalf("token %d should fill right-to-left", i)
		}
	}
	for _, i := range []int{2, 5} {
		if tokens[i].Kind != KindSeparator || tokens[i].Sep != "/" {
			t.Fatalf("token %d=%+v, want `/` separator", i, tokens[i])
		}
	}

	// Sections: each digit group and each literal stands alone.
	wantSec := [][2]int{{0, 2}, {0, 2}, {2, 3}, {3, 5}, {3, 5}, {5, 6}, {6, 10}, {6, 10}, {6, 10}, {6, 10}, {10, 11}}
	for i, w := range wantSec {
		if tokens[i].SecStart != w[0] || tokens[i].SecEnd != w[1] {
			t.Fatalf("token %d section=[%d,%d), want [%d,%d)", i, tokens[i].SecStart, tokens[i].SecEnd, w[0], w[1])
		}
	}
	if tokens[9].SecEnd != 10 {
		t.Fatalf("last real slot section end=%d, want sentinel index 10", tokens[9].SecEnd)
	}
}

func TestParse_GroupedNumberMask(t *testing.T) {
	tokens, err := Parse("###,##0.0##")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := len(tokens), 12; got != want {
		t.Fatalf("token count=%d, want %d", got, want)
	}

	// One number field spans digits, grouping, and fraction.
	for i := 0; i < 11; i++ {
		if tokens[i].NumStart != 0 || tokens[i].NumEnd != 11 {
			t.Fatalf("token %d number=[%d,%d), want [0,11)", i, tokens[i].NumStart, tokens[i].NumEnd)
		}
	}
	// Direction flips at the decimal separator.
	for _, i := range []int{0, 1, 2, 4, 5, 6} {
		if !tokens[i].RightToLeft {
			t.Fatalf("integer slot %d should be right-to-left", i)
		}
	}
	for _, i := range []int{8, 9, 10} {
		if tokens[i].RightToLeft {
			t.Fatalf("fraction slot %d should be left-to-right", i)
		}
	}
	if tokens[3].Kind != KindGroupSep || tokens[7].Kind != KindDecimalSep {
		t.Fatalf("separator kinds wrong: %v %v", tokens[3].Kind, tokens[7].Kind)
	}
	if tokens[6].Kind != KindDigit0 || tokens[8].Kind != KindDigit0 {
		t.Fatalf("zero-fill kinds wrong: %v %v", tokens[6].Kind, tokens[8].Kind)
	}
}

func TestParse_DirectionResetsPerNumber(t *testing.T) {
	tokens, err := Parse("99.99 99")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !tokens[0].RightToLeft || tokens[3].RightToLeft {
		t.Fatalf("first number direction wrong")
	}
	// The literal resets the direction for the second number.
	if !tokens[6].RightToLeft || !tokens[7].RightToLeft {
		t.Fatalf("second number should restart right-to-left")
	}
}

func TestParse_EscapesAndLiterals(t *testing.T) {
	tokens, err := Parse(`\99`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tokens[0].Kind != KindSeparator || tokens[0].Sep != "9" {
		t.Fatalf("escaped slot=%+v, want literal 9", tokens[0])
	}
	if tokens[1].Kind != KindDigit {
		t.Fatalf("second slot kind=%v, want digit", tokens[1].Kind)
	}

	tokens, err = Parse("99€99")
	if err != nil {
		t.Fatalf("parse with non-ascii literal: %v", err)
	}
	if tokens[2].Kind != KindSeparator || tokens[2].Sep != "€" {
		t.Fatalf("non-ascii slot=%+v, want implicit literal", tokens[2])
	}
}

func TestParse_Errors(t *testing.T) {
	if _, err := Parse(`99\`); err == nil {
		t.Fatalf("dangling escape must fail")
	}
	if _, err := Parse("9A9"); err == nil {
		t.Fatalf("unrecognized ascii must fail")
	}

	_, err := Parse("9A9")
	me, ok := err.(*MaskError)
	if !ok {
		t.Fatalf("error type=%T, want *MaskError", err)
	}
	if me.Pos != 1 {
		t.Fatalf("error position=%d, want 1", me.Pos)
	}
}

func TestParse_SentinelClosesRanges(t *testing.T) {
	for _, pattern := range []string{"999", "###.##", "dddd dddd", "ll-99", `\#\#`} {
		tokens, err := Parse(pattern)
		if err != nil {
			t.Fatalf("parse %q: %v", pattern, err)
		}
		n := len(tokens) - 1
		if tokens[n].Kind != KindNone {
			t.Fatalf("%q: missing sentinel", pattern)
		}
		if tokens[n-1].SecEnd != n {
			t.Fatalf("%q: last slot section end=%d, want %d", pattern, tokens[n-1].SecEnd, n)
		}
		if tokens[n-1].NumEnd != n {
			t.Fatalf("%q: last slot number end=%d, want %d", pattern, tokens[n-1].NumEnd, n)
		}
	}
}
