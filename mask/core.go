package mask

import (
	"github.com/iw2rmb/filigree/internal/grapheme"
)

// Core is the masked-input editing state machine.
//
// The value buffer always holds exactly one grapheme per real mask slot and
// every grapheme is a valid canonical edit character for its slot. Editing
// operations rewrite slots in place; the buffer never grows or shrinks.
type Core struct {
	mask  []Token
	value []string

	cursor int
	anchor int

	offset int
	width  int

	sym Symbols
}

// New returns an empty core with the canonical symbol set and no mask.
// A core without a mask has length zero and ignores edits.
func New() *Core {
	return &Core{sym: DefaultSymbols()}
}

// SetMask compiles pattern and resets the value to all slot defaults.
// On error the previous mask and value are kept.
func (c *Core) SetMask(pattern string) error {
	tokens, err := Parse(pattern)
	if err != nil {
		return err
	}
	c.mask = tokens
	c.value = defaultValue(tokens)
	c.cursor = 0
	c.anchor = 0
	c.offset = 0
	c.remapAll()
	return nil
}

func defaultValue(tokens []Token) []string {
	out := make([]string, 0, len(tokens)-1)
	for _, t := range tokens[:len(tokens)-1] {
		out = append(out, t.EditDefault)
	}
	return out
}

// remapAll re-canonicalizes every number field. Only used after wholesale
// value changes; single edits remap just the touched field.
func (c *Core) remapAll() {
	for ns := 0; ns < c.Len(); {
		t := c.mask[ns]
		if !t.Kind.IsNumber() {
			ns = t.NumEnd
			continue
		}
		if mapped, err := remapNumber(c.mask[t.NumStart:t.NumEnd], c.value[t.NumStart:t.NumEnd]); err == nil {
			copy(c.value[t.NumStart:t.NumEnd], mapped)
		}
		ns = t.NumEnd
	}
}

// Len returns the number of real slots (graphemes) in the value.
func (c *Core) Len() int {
	if len(c.mask) == 0 {
		return 0
	}
	return len(c.mask) - 1
}

// HasMask reports whether a mask has been compiled.
func (c *Core) HasMask() bool { return len(c.mask) > 0 }

// Tokens returns a copy of the compiled mask, including the sentinel.
func (c *Core) Tokens() []Token {
	out := make([]Token, len(c.mask))
	copy(out, c.mask)
	return out
}

// Symbols returns the active locale symbols.
func (c *Core) Symbols() Symbols { return c.sym }

// SetSymbols changes the locale symbols. The stored value is canonical, so
// no remapping is needed.
func (c *Core) SetSymbols(sym Symbols) {
	if sym.Decimal == "" {
		sym.Decimal = "."
	}
	if sym.Group == "" {
		sym.Group = ","
	}
	if sym.Negative == "" {
		sym.Negative = "-"
	}
	if sym.Positive == "" {
		sym.Positive = "+"
	}
	c.sym = sym
}

// Value returns the canonical value string.
func (c *Core) Value() string {
	return grapheme.Join(c.value)
}

// SetValue replaces the whole value. The text must have exactly one grapheme
// per slot and every grapheme must be valid for its slot; number fields are
// re-canonicalized. On error the previous value is kept.
func (c *Core) SetValue(text string) error {
	clusters := grapheme.Split(text)
	if len(clusters) != c.Len() {
		return &MaskError{Pos: -1, Msg: "value length does not match mask"}
	}
	for i, g := range clusters {
		if !c.validSlotValue(i, g) {
			return &MaskError{Pos: i, Msg: "invalid character for slot"}
		}
	}
	next := make([]string, len(clusters))
	copy(next, clusters)

	prev := c.value
	c.value = next
	for ns := 0; ns < c.Len(); {
		t := c.mask[ns]
		if !t.Kind.IsNumber() {
			ns = t.NumEnd
			continue
		}
		mapped, err := remapNumber(c.mask[t.NumStart:t.NumEnd], c.value[t.NumStart:t.NumEnd])
		if err != nil {
			c.value = prev
			return err
		}
		copy(c.value[t.NumStart:t.NumEnd], mapped)
		ns = t.NumEnd
	}
	c.SetCursor(0, false)
	return nil
}

func (c *Core) validSlotValue(i int, g string) bool {
	t := c.mask[i]
	switch t.Kind {
	case KindSeparator:
		return g == t.Sep
	case KindGroupSep:
		return g == " " || g == ","
	case KindDecimalSep:
		return g == "."
	case KindSign:
		return g == " " || g == "-"
	case KindPlus:
		return g == "+" || g == "-"
	default:
		return g == t.EditDefault || t.Kind.accepts(g)
	}
}

// Reset clears the value back to slot defaults, keeping the mask.
func (c *Core) Reset() {
	if !c.HasMask() {
		return
	}
	c.value = defaultValue(c.mask)
	c.remapAll()
	c.cursor = 0
	c.anchor = 0
	c.offset = 0
}

// SetDisplayMask overrides the per-slot display defaults shown for untouched
// sections. The text must have one grapheme per real slot.
func (c *Core) SetDisplayMask(text string) error {
	clusters := grapheme.Split(text)
	if len(clusters) != c.Len() {
		return &MaskError{Pos: -1, Msg: "display mask length does not match mask"}
	}
	for i, g := range clusters {
		c.mask[i].DisplayDefault = g
	}
	return nil
}
