package lineinput

import (
	"strings"

	"github.com/iw2rmb/filigree/internal/grapheme"
)

// Core is a plain single-line editing state machine. Positions are grapheme
// cluster indices into the value; the zero value is an empty, usable core.
type Core struct {
	value  []string
	cursor int
	anchor int
	offset int
	width  int
}

// New returns an empty core.
func New() *Core { return &Core{} }

// Len returns the value length in grapheme clusters.
func (c *Core) Len() int { return len(c.value) }

// Value returns the current text.
func (c *Core) Value() string { return strings.Join(c.value, "") }

// Graphemes returns the value as grapheme clusters. The slice is shared;
// callers must not mutate it.
func (c *Core) Graphemes() []string { return c.value }

// SetValue replaces the text and moves the cursor to the end.
func (c *Core) SetValue(s string) {
	c.value = grapheme.Split(s)
	c.cursor = len(c.value)
	c.anchor = c.cursor
	c.scrollCursorToVisible()
}

// Reset clears the text and all positions.
func (c *Core) Reset() {
	c.value = nil
	c.cursor = 0
	c.anchor = 0
	c.offset = 0
}
