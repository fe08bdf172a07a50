package mask

// numberParts is the bare content of a number field: sign and digit
// sequences with all padding, grouping, and placement stripped.
type numberParts struct {
	neg  bool
	int_ []string // integer digits, most significant first
	frac []string // fraction digits, in order
}

// splitNumber extracts the parts of one number field. tokens and raw are the
// slot span of a single Num range and must have equal length.
func splitNumber(tokens []Token, raw []string) numberParts {
	var p numberParts
	dec := decimalIndex(tokens)
	for i, g := range raw {
		switch g {
		case "-":
			p.neg = true
			continue
		case "+":
			continue
		}
		if !isDecDigit(g) {
			continue
		}
		if dec >= 0 && i > dec {
			p.frac = append(p.frac, g)
		} else {
			p.int_ = append(p.int_, g)
		}
	}
	// In a zero-filled field leading zeros are padding; in a blank-filled
	// field they are typed content and must survive the round trip.
	for zeroFilled(tokens) && len(p.int_) > 1 && p.int_[0] == "0" {
		p.int_ = p.int_[1:]
	}
	return p
}

// renderNumber lays the parts back onto the slot span: fraction digits
// left-aligned after the decimal point, integer digits right-aligned before
// it, grouping separators materialized only when a digit sits left of them,
// and the sign either on its dedicated slot or directly left of the most
// significant digit.
func renderNumber(tokens []Token, p numberParts) ([]string, error) {
	out := make([]string, len(tokens))
	dec := decimalIndex(tokens)
	signSlot := -1
	for i, t := range tokens {
		if t.Kind.IsSign() {
			signSlot = i
		}
	}

	// Fraction part.
	if dec >= 0 {
		out[dec] = "."
		fi := 0
		for i := dec + 1; i < len(tokens); i++ {
			t := tokens[i]
			if !t.Kind.IsNumberDigit() {
				out[i] = t.EditDefault
				continue
			}
			if fi < len(p.frac) {
				out[i] = p.frac[fi]
				fi++
			} else {
				out[i] = t.EditDefault
			}
		}
		if fi < len(p.frac) {
			return nil, &MaskError{Pos: -1, Msg: "too many fraction digits for field"}
		}
	} else if len(p.frac) > 0 {
		return nil, &MaskError{Pos: -1, Msg: "fraction digits without a decimal slot"}
	}

	// Integer part, filled from the decimal point outward.
	intEnd := len(tokens)
	if dec >= 0 {
		intEnd = dec
	}
	di := len(p.int_) - 1
	leftmostDigit := intEnd
	for i := intEnd - 1; i >= 0; i-- {
		t := tokens[i]
		switch {
		case t.Kind.IsNumberDigit():
			if di >= 0 {
				out[i] = p.int_[di]
				di--
				leftmostDigit = i
			} else {
				out[i] = t.EditDefault
			}
		case t.Kind == KindGroupSep:
			if di >= 0 {
				out[i] = ","
			} else {
				out[i] = " "
			}
		case t.Kind == KindSign:
			if p.neg {
				out[i] = "-"
			} else {
				out[i] = " "
			}
		case t.Kind == KindPlus:
			if p.neg {
				out[i] = "-"
			} else {
				out[i] = "+"
			}
		default:
			out[i] = t.EditDefault
		}
	}
	if di >= 0 {
		return nil, &MaskError{Pos: -1, Msg: "too many digits for field"}
	}

	// Zero-filled fields keep their fill up to the most significant digit;
	// the pass above already wrote defaults, which is exactly that.

	if p.neg && signSlot < 0 {
		if err := placeInlineSign(tokens, out, leftmostDigit); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// placeInlineSign writes `-` into the Numeric slot directly left of the most
// significant digit (skipping grouping separators).
func placeInlineSign(tokens []Token, out []string, leftmostDigit int) error {
	i := leftmostDigit - 1
	for i >= 0 && tokens[i].Kind == KindGroupSep {
		i--
	}
	if i < 0 || tokens[i].Kind != KindNumeric || out[i] != " " {
		return &MaskError{Pos: -1, Msg: "no slot available for sign"}
	}
	out[i] = "-"
	return nil
}

// remapNumber re-canonicalizes one number field after an edit. It is
// idempotent: remapping its own output is a no-op.
func remapNumber(tokens []Token, raw []string) ([]string, error) {
	return renderNumber(tokens, splitNumber(tokens, raw))
}

func decimalIndex(tokens []Token) int {
	for i, t := range tokens {
		if t.Kind == KindDecimalSep {
			return i
		}
	}
	return -1
}
