package lineinput

import "github.com/iw2rmb/filigree/internal/grapheme"

// Cursor returns the cursor position, 0..Len().
func (c *Core) Cursor() int { return c.cursor }

// Anchor returns the selection anchor position.
func (c *Core) Anchor() int { return c.anchor }

// Selection returns the ordered selection range [start, end).
func (c *Core) Selection() (start, end int) {
	if c.anchor <= c.cursor {
		return c.anchor, c.cursor
	}
	return c.cursor, c.anchor
}

// HasSelection reports whether cursor and anchor differ.
func (c *Core) HasSelection() bool { return c.anchor != c.cursor }

// SetCursor moves the cursor. With extend the anchor is kept; without it the
// anchor follows the cursor. Reports whether any position changed.
func (c *Core) SetCursor(pos int, extend bool) bool {
	pos = clampInt(pos, 0, c.Len())
	changed := pos != c.cursor
	c.cursor = pos
	if !extend && c.anchor != pos {
		c.anchor = pos
		changed = true
	}
	if c.scrollCursorToVisible() {
		changed = true
	}
	return changed
}

// SelectAll selects the whole value and puts the cursor at the end.
func (c *Core) SelectAll() {
	c.anchor = 0
	c.cursor = c.Len()
	c.scrollCursorToVisible()
}

// MovePrev moves the cursor one grapheme left; a non-extending move with an
// active selection collapses to the selection start.
func (c *Core) MovePrev(extend bool) bool {
	if !extend && c.HasSelection() {
		start, _ := c.Selection()
		return c.SetCursor(start, false)
	}
	return c.SetCursor(c.cursor-1, extend)
}

// MoveNext moves the cursor one grapheme right; a non-extending move with an
// active selection collapses to the selection end.
func (c *Core) MoveNext(extend bool) bool {
	if !extend && c.HasSelection() {
		_, end := c.Selection()
		return c.SetCursor(end, false)
	}
	return c.SetCursor(c.cursor+1, extend)
}

// MoveHome moves the cursor to position 0.
func (c *Core) MoveHome(extend bool) bool { return c.SetCursor(0, extend) }

// MoveEnd moves the cursor past the last grapheme.
func (c *Core) MoveEnd(extend bool) bool { return c.SetCursor(c.Len(), extend) }

// MoveWordPrev moves the cursor to the previous word boundary.
func (c *Core) MoveWordPrev(extend bool) bool {
	return c.SetCursor(grapheme.PrevWordBoundary(c.value, c.cursor), extend)
}

// MoveWordNext moves the cursor to the next word boundary.
func (c *Core) MoveWordNext(extend bool) bool {
	return c.SetCursor(grapheme.NextWordBoundary(c.value, c.cursor), extend)
}

// SelectWord selects the word (or separator run) around pos.
func (c *Core) SelectWord(pos int) {
	pos = clampInt(pos, 0, c.Len())
	if pos == c.Len() && pos > 0 {
		pos--
	}
	if c.Len() == 0 {
		return
	}
	// Classify the grapheme at pos itself, not its left neighbour.
	c.anchor = grapheme.PrevWordBoundary(c.value, pos+1)
	c.cursor = grapheme.NextWordBoundary(c.value, pos)
	c.scrollCursorToVisible()
}

// Offset returns the horizontal scroll offset.
func (c *Core) Offset() int { return c.offset }

// SetOffset sets the scroll offset; the cursor-visibility invariant is
// restored afterwards.
func (c *Core) SetOffset(off int) {
	c.offset = clampInt(off, 0, c.Len())
	c.scrollCursorToVisible()
}

// Width returns the visible window width; 0 disables windowing.
func (c *Core) Width() int { return c.width }

// SetWidth sets the visible window width.
func (c *Core) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	c.width = w
	c.scrollCursorToVisible()
}

// scrollCursorToVisible restores offset <= cursor <= offset+width.
func (c *Core) scrollCursorToVisible() bool {
	prev := c.offset
	if c.width <= 0 {
		c.offset = 0
		return prev != 0
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor > c.offset+c.width {
		c.offset = c.cursor - c.width
	}
	return c.offset != prev
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
