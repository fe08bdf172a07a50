package mask

import (
	"strings"
	"testing"
)

// FuzzCore_RandomEditSequences drives a masked core through random insert,
// delete, and navigation sequences and checks the structural invariants
// after every step: the value length never changes, cursor and anchor stay
// in bounds, the scroll window keeps the cursor visible, and the number
// remapper is a fixpoint on the current value.
func FuzzCore_RandomEditSequences(f *testing.F) {
	seeds := [][]byte{
		{},
		{0},
		{1, 2, 3, 4, 5},
		{255, 0, 128, 64, 32, 16, 8, 4, 2, 1},
		[]byte("12202024"),
		[]byte("-5.2-+9"),
		[]byte("type-delete-type"),
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	patterns := []string{
		"99/99/9999",
		"###,##0.0##",
		"###.##",
		"-999",
		"dddd dddd",
		"hh:oo:ll",
		"##0.0## 99€99",
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		r := fuzzByteReader{data: data}

		pattern := patterns[r.nextInt(len(patterns))]
		c := New()
		if err := c.SetMask(pattern); err != nil {
			t.Fatalf("set mask %q: %v", pattern, err)
		}
		if r.nextBool() {
			c.SetWidth(1 + r.nextInt(c.Len()))
		}
		if r.nextBool() {
			c.SetSymbols(Symbols{Decimal: ",", Group: ".", Negative: "-", Positive: "+"})
		}

		steps := 1 + r.nextInt(24)
		for step := 0; step < steps; step++ {
			applyFuzzEdit(c, &r)
			assertCoreFuzzInvariants(t, c, pattern, step)
		}
	})
}

func applyFuzzEdit(c *Core, r *fuzzByteReader) {
	switch r.nextInt(10) {
	case 0:
		c.InsertChar(fuzzGrapheme(r))
	case 1:
		var b strings.Builder
		for i, n := 0, r.nextInt(6); i < n; i++ {
			b.WriteString(fuzzGrapheme(r))
		}
		c.InsertText(b.String())
	case 2:
		c.RemovePrev()
	case 3:
		c.RemoveNext()
	case 4:
		c.SetCursor(r.nextInt(c.Len()+1), r.nextBool())
	case 5:
		c.MovePrev(r.nextBool())
	case 6:
		c.MoveNext(r.nextBool())
	case 7:
		c.SelectWord(r.nextInt(c.Len() + 1))
	case 8:
		c.RemoveSelection()
	case 9:
		c.SetOffset(r.nextInt(c.Len() + 1))
	}
}

func fuzzGrapheme(r *fuzzByteReader) string {
	alphabet := []string{
		"0", "1", "5", "7", "8", "9", "f", "A", "x", "y",
		"-", "+", ".", ",", "/", ":", " ", "€", "👍", "!",
	}
	return alphabet[r.nextInt(len(alphabet))]
}

func assertCoreFuzzInvariants(t *testing.T, c *Core, pattern string, step int) {
	t.Helper()

	if got, want := len(c.value), c.Len(); got != want {
		t.Fatalf("%q step %d: value length %d, want %d", pattern, step, got, want)
	}
	if c.Cursor() < 0 || c.Cursor() > c.Len() {
		t.Fatalf("%q step %d: cursor %d out of bounds", pattern, step, c.Cursor())
	}
	if c.Anchor() < 0 || c.Anchor() > c.Len() {
		t.Fatalf("%q step %d: anchor %d out of bounds", pattern, step, c.Anchor())
	}
	if c.Width() > 0 {
		if c.Offset() > c.Cursor() || c.Cursor() > c.Offset()+c.Width() {
			t.Fatalf("%q step %d: window lost cursor: offset=%d cursor=%d width=%d",
				pattern, step, c.Offset(), c.Cursor(), c.Width())
		}
	} else if c.Offset() != 0 {
		t.Fatalf("%q step %d: offset %d without a window", pattern, step, c.Offset())
	}
	if got := c.MaskString(); got != pattern {
		t.Fatalf("%q step %d: mask drifted to %q", pattern, step, got)
	}

	// Every number field must already be in canonical layout.
	for i := 0; i < c.Len(); i++ {
		tok := c.mask[i]
		if !tok.Kind.IsNumber() || i != tok.NumStart {
			continue
		}
		tokens := c.mask[tok.NumStart:tok.NumEnd]
		raw := c.value[tok.NumStart:tok.NumEnd]
		out, err := remapNumber(tokens, raw)
		if err != nil {
			t.Fatalf("%q step %d: remap of live value failed: %v", pattern, step, err)
		}
		if !equalSlots(out, raw) {
			t.Fatalf("%q step %d: number field [%d,%d) not canonical: %q vs %q",
				pattern, step, tok.NumStart, tok.NumEnd,
				strings.Join(raw, ""), strings.Join(out, ""))
		}
	}
}

type fuzzByteReader struct {
	data []byte
	idx  int
}

func (r *fuzzByteReader) nextByte() byte {
	if len(r.data) == 0 {
		return 0
	}
	b := r.data[r.idx%len(r.data)]
	r.idx++
	return b
}

func (r *fuzzByteReader) nextBool() bool {
	return r.nextByte()&1 == 1
}

func (r *fuzzByteReader) nextInt(max int) int {
	if max <= 0 {
		return 0
	}
	return int(r.nextByte()) % max
}
