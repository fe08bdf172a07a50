package mask

// removeRange resets every editable slot in [start, end) to its default and
// re-canonicalizes the touched number fields. Separators are never targeted;
// the buffer length is invariant.
func (c *Core) removeRange(start, end int) bool {
	start = clampInt(start, 0, c.Len())
	end = clampInt(end, start, c.Len())
	if start == end {
		return false
	}

	changed := false
	for i := start; i < end; i++ {
		t := c.mask[i]
		if !t.Kind.IsEditable() {
			continue
		}
		if c.value[i] != t.EditDefault {
			c.value[i] = t.EditDefault
			changed = true
		}
	}
	for i := start; i < end; {
		t := c.mask[i]
		if t.Kind.IsNumber() {
			before := make([]string, t.NumEnd-t.NumStart)
			copy(before, c.value[t.NumStart:t.NumEnd])
			c.remapTouched(t)
			if !equalSlots(before, c.value[t.NumStart:t.NumEnd]) {
				changed = true
			}
			i = t.NumEnd
			continue
		}
		i = t.NumEnd
	}
	return changed
}

// RemoveSelection resets the selected slots to defaults and collapses the
// cursor to the selection start.
func (c *Core) RemoveSelection() bool {
	if !c.HasSelection() {
		return false
	}
	start, end := c.Selection()
	c.removeRange(start, end)
	c.cursor = start
	c.anchor = start
	c.scrollCursorToVisible()
	return true
}

// RemovePrev applies backspace semantics: the nearest editable slot left of
// the cursor is reset (separators are skipped, never deleted). In a
// right-to-left field the cursor stays put until the section empties, then
// snaps to the section start; in a left-to-right field the cursor follows
// the deleted slot and snaps to the section end once it empties.
func (c *Core) RemovePrev() bool {
	if !c.HasMask() {
		return false
	}
	if c.HasSelection() {
		return c.RemoveSelection()
	}
	if c.cursor == 0 {
		return false
	}

	j := c.cursor - 1
	for j >= 0 && !c.mask[j].Kind.IsEditable() {
		j--
	}
	if j < 0 {
		// Nothing deletable to the left; plain cursor movement.
		return c.SetCursor(c.cursor-1, false)
	}
	return c.deleteSlot(j, true)
}

// RemoveNext applies delete-key semantics: the nearest editable slot at or
// right of the cursor is reset.
func (c *Core) RemoveNext() bool {
	if !c.HasMask() {
		return false
	}
	if c.HasSelection() {
		return c.RemoveSelection()
	}
	if c.cursor >= c.Len() {
		return false
	}

	j := c.cursor
	for j < c.Len() && !c.mask[j].Kind.IsEditable() {
		j++
	}
	if j >= c.Len() {
		return c.SetCursor(c.cursor+1, false)
	}
	return c.deleteSlot(j, false)
}

func (c *Core) deleteSlot(j int, backward bool) bool {
	t := c.mask[j]
	switch {
	case t.RightToLeft && t.Kind.IsNumberDigit():
		c.value[j] = t.EditDefault
		c.remapTouched(t)
		if c.sectionEmpty(t) {
			c.SetCursor(t.SecStart, false)
		}
	case t.Kind.IsSign():
		c.value[j] = t.EditDefault
		c.remapTouched(t)
	default:
		// Left-to-right: shift the section tail left, pad with the default.
		for i := j; i < t.SecEnd-1; i++ {
			c.value[i] = c.value[i+1]
		}
		c.value[t.SecEnd-1] = c.mask[t.SecEnd-1].EditDefault
		if t.Kind.IsNumber() {
			c.remapTouched(t)
		}
		if c.sectionEmpty(t) {
			c.SetCursor(t.SecEnd, false)
		} else if backward {
			c.SetCursor(j, false)
		}
	}
	return true
}

func (c *Core) sectionEmpty(t Token) bool {
	for i := t.SecStart; i < t.SecEnd; i++ {
		if c.value[i] != c.mask[i].EditDefault {
			return false
		}
	}
	return true
}

func equalSlots(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
