package mask

// Symbols holds the locale glyphs used when rendering a value and when
// mapping typed input. The stored value always uses the canonical
// `.` `,` `-` `+` forms.
type Symbols struct {
	Decimal  string // decimal separator glyph
	Group    string // grouping separator glyph
	Negative string // negative sign glyph
	Positive string // positive sign glyph, shown on `+` slots
}

// DefaultSymbols returns the canonical symbol set.
func DefaultSymbols() Symbols {
	return Symbols{
		Decimal:  ".",
		Group:    ",",
		Negative: "-",
		Positive: "+",
	}
}

// canonical maps a typed grapheme to its canonical stored form.
func (s Symbols) canonical(g string) string {
	switch g {
	case s.Decimal:
		return "."
	case s.Group:
		return ","
	case s.Negative:
		return "-"
	case s.Positive:
		return "+"
	}
	return g
}

// localize maps a canonical number character to its locale glyph.
func (s Symbols) localize(g string) string {
	switch g {
	case ".":
		return s.Decimal
	case ",":
		return s.Group
	case "-":
		return s.Negative
	case "+":
		return s.Positive
	}
	return g
}
