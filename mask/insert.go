package mask

import "github.com/iw2rmb/filigree/internal/grapheme"

// InsertChar inserts one typed grapheme. The glyph is first mapped through
// the locale symbols to its canonical form, an active selection is cleared,
// then advanceCursor picks the receiving slot and the insert rules apply.
//
// A grapheme that matches no rule is silently absorbed; the return value
// reports whether any state changed.
func (c *Core) InsertChar(g string) bool {
	if !c.HasMask() || g == "" {
		return false
	}
	g = c.sym.canonical(g)

	changed := false
	if c.HasSelection() {
		start, end := c.Selection()
		c.removeRange(start, end)
		c.cursor = start
		c.anchor = start
		c.scrollCursorToVisible()
		// Collapsing a selection moves the anchor even when every slot
		// already held its default.
		changed = true
	}

	pos := c.advanceCursor(g)
	if pos != c.cursor {
		c.cursor = pos
		c.anchor = pos
		c.scrollCursorToVisible()
		changed = true
	}
	if c.insertAt(pos, g) {
		c.anchor = c.cursor
		c.scrollCursorToVisible()
		changed = true
	}
	return changed
}

// InsertText inserts text grapheme by grapheme; invalid graphemes are
// skipped. Reports whether anything changed.
func (c *Core) InsertText(text string) bool {
	changed := false
	for _, g := range grapheme.Split(text) {
		if c.InsertChar(g) {
			changed = true
		}
	}
	return changed
}

// advanceCursor finds the slot that will receive g, searching forward from
// the cursor. The priority order is load-bearing:
//
//  1. a right-to-left integer field directly left of the cursor with a
//     droppable placeholder takes digits first;
//  2. inside a right-to-left field, the insertion point sits after any
//     leading placeholders and sign;
//  3. a sign slot (or a sign-capable number) takes `-`/`+`;
//  4. a decimal separator matches exactly;
//  5. grouping separators are always skipped, never a stop;
//  6. a literal separator matches exactly;
//  7. a left-to-right gap directly left of the cursor is re-entered while
//     the neighbour section still has space;
//  8. any other editable kind matches directly.
//
// If nothing matches before the sentinel the cursor stays put.
func (c *Core) advanceCursor(g string) int {
	// Rule 1.
	if c.cursor > 0 {
		lt := c.mask[c.cursor-1]
		if lt.RightToLeft && lt.Kind.IsNumberDigit() && isDecDigit(g) && c.rtolHasRoom(lt) {
			return c.cursor
		}
	}
	// Rule 7.
	if c.cursor > 0 {
		lt := c.mask[c.cursor-1]
		if !lt.RightToLeft && lt.Kind.IsEditable() && !lt.Kind.IsSign() && lt.Kind.accepts(g) {
			j := c.cursor
			for j > lt.SecStart && c.value[j-1] == c.mask[j-1].EditDefault {
				j--
			}
			if j < c.cursor {
				return j
			}
		}
	}

	for i := c.cursor; i < len(c.mask)-1; i++ {
		t := c.mask[i]
		switch {
		case t.Kind == KindGroupSep:
			// Rule 5.
			continue
		case t.RightToLeft && t.Kind.IsNumberDigit():
			// Rules 2 and 3 (sign-capable number).
			if isDecDigit(g) && c.rtolHasRoom(t) {
				return c.rtolInsertPos(t)
			}
			if isSignChar(g) && c.numberAcceptsSign(t) {
				return c.rtolInsertPos(t)
			}
		case t.Kind.IsSign():
			// Rule 3.
			if isSignChar(g) {
				return i
			}
		case t.Kind == KindDecimalSep:
			// Rule 4.
			if g == "." {
				return i
			}
		case t.Kind == KindSeparator:
			// Rule 6.
			if g == t.Sep {
				return i
			}
		case t.Kind.IsEditable():
			// Rule 8.
			if t.Kind.accepts(g) {
				return i
			}
		}
	}
	return c.cursor
}

// rtolInsertPos is the cursor position inside a right-to-left field: after
// any leading placeholders and sign, directly left of the first digit.
func (c *Core) rtolInsertPos(t Token) int {
	pos := t.SecStart
	for pos < t.SecEnd {
		g := c.value[pos]
		if g == c.mask[pos].EditDefault || g == "-" || g == "+" {
			pos++
			continue
		}
		break
	}
	return pos
}

// rtolHasRoom reports whether the number field containing t can take one
// more integer digit: its most significant slot still holds a droppable
// placeholder.
func (c *Core) rtolHasRoom(t Token) bool {
	for i := t.NumStart; i < t.NumEnd; i++ {
		if c.mask[i].Kind.IsNumberDigit() {
			return c.value[i] == c.mask[i].EditDefault
		}
	}
	return false
}

// numberAcceptsSign reports whether the number field containing t has a slot
// that can carry a sign.
func (c *Core) numberAcceptsSign(t Token) bool {
	for i := t.NumStart; i < t.NumEnd; i++ {
		k := c.mask[i].Kind
		if k.IsSign() || k == KindNumeric {
			return true
		}
	}
	return false
}

// insertAt applies the insert rules at the chosen slot, in order: sign edit
// at the slot, sign edit at the left neighbour, right-to-left field insert,
// right-to-left boundary insert, left-to-right insert.
func (c *Core) insertAt(pos int, g string) bool {
	if isSignChar(g) {
		if pos < c.Len() && c.trySignEdit(c.mask[pos], g) {
			return true
		}
		if pos > 0 && c.trySignEdit(c.mask[pos-1], g) {
			return true
		}
	}

	if pos < c.Len() {
		t := c.mask[pos]
		switch t.Kind {
		case KindDecimalSep:
			if g == "." {
				c.SetCursor(pos+1, false)
				return true
			}
		case KindSeparator:
			if g == t.Sep {
				c.SetCursor(pos+1, false)
				return true
			}
		}
		if t.RightToLeft && t.Kind.IsNumberDigit() && isDecDigit(g) {
			return c.rtolInsert(t, g)
		}
	}
	if pos > 0 {
		lt := c.mask[pos-1]
		if lt.RightToLeft && lt.Kind.IsNumberDigit() && isDecDigit(g) {
			return c.rtolInsert(lt, g)
		}
	}
	if pos < c.Len() {
		t := c.mask[pos]
		if !t.RightToLeft && t.Kind.IsEditable() && !t.Kind.IsSign() && t.Kind.accepts(g) {
			return c.ltorInsert(pos, g)
		}
	}
	return false
}

// trySignEdit toggles or sets the sign of the number field containing t.
// `-` toggles negative; `+` forces positive.
func (c *Core) trySignEdit(t Token, g string) bool {
	if !t.Kind.IsNumber() || !c.numberAcceptsSign(t) {
		return false
	}
	tokens := c.mask[t.NumStart:t.NumEnd]
	raw := c.value[t.NumStart:t.NumEnd]
	parts := splitNumber(tokens, raw)
	if g == "-" {
		parts.neg = !parts.neg
	} else {
		parts.neg = false
	}
	out, err := renderNumber(tokens, parts)
	if err != nil {
		return false
	}
	copy(raw, out)
	return true
}

// rtolInsert appends g as the new least significant integer digit of the
// number field containing t; the remapper re-derives padding, grouping, and
// sign placement. The cursor does not advance.
func (c *Core) rtolInsert(t Token, g string) bool {
	if !c.rtolHasRoom(t) {
		return false
	}
	tokens := c.mask[t.NumStart:t.NumEnd]
	raw := c.value[t.NumStart:t.NumEnd]
	parts := splitNumber(tokens, raw)
	if len(parts.int_) == 1 && parts.int_[0] == "0" && zeroFilled(tokens) {
		parts.int_ = parts.int_[:0]
	}
	parts.int_ = append(parts.int_, g)
	out, err := renderNumber(tokens, parts)
	if err != nil {
		return false
	}
	copy(raw, out)
	return true
}

// zeroFilled reports whether the field's integer part is zero-padded, in
// which case a lone zero is fill rather than typed content. Zero-fill
// emanates from the least significant digit slot.
func zeroFilled(tokens []Token) bool {
	last := KindNone
	for _, t := range tokens {
		if t.Kind == KindDecimalSep {
			break
		}
		if t.Kind.IsNumberDigit() {
			last = t.Kind
		}
	}
	return last == KindDigit0
}

// ltorInsert writes g at pos in a left-to-right section: overwrite a
// placeholder in place, or shift right dropping the section's trailing
// placeholder. The cursor advances by one.
func (c *Core) ltorInsert(pos int, g string) bool {
	t := c.mask[pos]
	switch {
	case c.value[pos] == t.EditDefault:
		c.value[pos] = g
	case c.value[t.SecEnd-1] == c.mask[t.SecEnd-1].EditDefault:
		copy(c.value[pos+1:t.SecEnd], c.value[pos:t.SecEnd-1])
		c.value[pos] = g
	default:
		return false
	}
	if t.Kind.IsNumber() {
		c.remapTouched(t)
	}
	c.SetCursor(pos+1, false)
	return true
}

// remapTouched re-canonicalizes the number field containing t, keeping the
// current content on remap failure (which cannot drop graphemes).
func (c *Core) remapTouched(t Token) {
	tokens := c.mask[t.NumStart:t.NumEnd]
	raw := c.value[t.NumStart:t.NumEnd]
	if out, err := remapNumber(tokens, raw); err == nil {
		copy(raw, out)
	}
}
