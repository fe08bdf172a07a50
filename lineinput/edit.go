package lineinput

import "github.com/iw2rmb/filigree/internal/grapheme"

// InsertChar inserts one grapheme at the cursor, replacing an active
// selection first. Reports whether the value changed.
func (c *Core) InsertChar(g string) bool {
	if g == "" {
		return false
	}
	return c.InsertText(g)
}

// InsertText inserts text at the cursor, replacing an active selection
// first. The cursor lands after the inserted text.
func (c *Core) InsertText(text string) bool {
	ins := grapheme.Split(text)
	start, end := c.Selection()
	if len(ins) == 0 && start == end {
		return false
	}
	c.Replace(start, end, text)
	c.SetCursor(start+len(ins), false)
	return true
}

// Replace splices text over the grapheme range [start, end) and re-derives
// cursor and anchor by position-shift arithmetic: positions at or after the
// replaced range shift by the length delta, positions inside it collapse to
// the end of the inserted text.
func (c *Core) Replace(start, end int, text string) {
	start = clampInt(start, 0, c.Len())
	end = clampInt(end, start, c.Len())
	ins := grapheme.Split(text)

	next := make([]string, 0, len(c.value)-(end-start)+len(ins))
	next = append(next, c.value[:start]...)
	next = append(next, ins...)
	next = append(next, c.value[end:]...)
	c.value = next

	c.cursor = shiftPos(c.cursor, start, end, len(ins))
	c.anchor = shiftPos(c.anchor, start, end, len(ins))
	c.scrollCursorToVisible()
}

// shiftPos remaps a position through a replacement of [start, end) by
// insLen graphemes.
func shiftPos(pos, start, end, insLen int) int {
	switch {
	case pos <= start:
		return pos
	case pos >= end:
		return pos + insLen - (end - start)
	default:
		return start + insLen
	}
}

// RemovePrev deletes the selection, or the grapheme before the cursor.
func (c *Core) RemovePrev() bool {
	if c.HasSelection() {
		return c.RemoveSelection()
	}
	if c.cursor == 0 {
		return false
	}
	c.Replace(c.cursor-1, c.cursor, "")
	return true
}

// RemoveNext deletes the selection, or the grapheme after the cursor.
func (c *Core) RemoveNext() bool {
	if c.HasSelection() {
		return c.RemoveSelection()
	}
	if c.cursor >= c.Len() {
		return false
	}
	c.Replace(c.cursor, c.cursor+1, "")
	return true
}

// RemoveSelection deletes the selected range; the cursor collapses to the
// selection start.
func (c *Core) RemoveSelection() bool {
	start, end := c.Selection()
	if start == end {
		return false
	}
	c.Replace(start, end, "")
	return true
}

// SelectedText returns the selected graphemes joined, or "" without a
// selection.
func (c *Core) SelectedText() string {
	start, end := c.Selection()
	return grapheme.Join(c.value[start:end])
}
