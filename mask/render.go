package mask

import (
	"strings"

	"github.com/iw2rmb/filigree/internal/grapheme"
)

// RenderValue returns the localized display string: locale glyphs applied
// over the canonical number characters, and display defaults substituted for
// slots of untouched sections.
func (c *Core) RenderValue() string {
	var sb strings.Builder
	for i, g := range c.value {
		t := c.mask[i]
		if g == t.EditDefault && t.DisplayDefault != g && c.sectionEmpty(t) {
			sb.WriteString(t.DisplayDefault)
			continue
		}
		if t.Kind.IsNumber() {
			sb.WriteString(c.sym.localize(g))
			continue
		}
		sb.WriteString(g)
	}
	return sb.String()
}

// CondensedValue returns the compact form: grouping separators and
// space-placeholder slots dropped, untouched number fields dropped entirely.
// The result uses locale glyphs like RenderValue.
func (c *Core) CondensedValue() string {
	var sb strings.Builder
	for i := 0; i < c.Len(); {
		t := c.mask[i]
		if t.Kind.IsNumber() && c.numberEmpty(t) {
			i = t.NumEnd
			continue
		}
		g := c.value[i]
		switch {
		case t.Kind == KindGroupSep:
		case g == " " && g == t.EditDefault:
		case t.Kind.IsNumber():
			sb.WriteString(c.sym.localize(g))
		default:
			sb.WriteString(g)
		}
		i++
	}
	return sb.String()
}

func (c *Core) numberEmpty(t Token) bool {
	for i := t.NumStart; i < t.NumEnd; i++ {
		if c.value[i] != c.mask[i].EditDefault {
			return false
		}
	}
	return true
}

// MaskString reconstructs the pattern with normalized escaping: literals in
// the unescaped set (space, `;`, `:`, `/`) and non-ASCII literals appear
// bare, every other literal is re-escaped.
func (c *Core) MaskString() string {
	var sb strings.Builder
	for _, t := range c.mask {
		if t.Kind == KindNone {
			continue
		}
		if t.Kind == KindSeparator {
			switch {
			case t.Sep == " " || t.Sep == ";" || t.Sep == ":" || t.Sep == "/":
				sb.WriteString(t.Sep)
			case isASCII(t.Sep):
				sb.WriteString(`\`)
				sb.WriteString(t.Sep)
			default:
				sb.WriteString(t.Sep)
			}
			continue
		}
		sb.WriteString(t.Kind.symbol())
	}
	return sb.String()
}

// DisplayMask returns the per-slot display defaults as one string.
func (c *Core) DisplayMask() string {
	var sb strings.Builder
	for _, t := range c.mask {
		if t.Kind == KindNone {
			continue
		}
		sb.WriteString(t.DisplayDefault)
	}
	return sb.String()
}

// SlotEmpty reports whether slot i still holds its edit default inside an
// untouched section. Widgets render such slots in a placeholder style.
func (c *Core) SlotEmpty(i int) bool {
	if i < 0 || i >= c.Len() {
		return false
	}
	t := c.mask[i]
	return c.value[i] == t.EditDefault && c.sectionEmpty(t)
}

// Graphemes returns a copy of the per-slot canonical graphemes.
func (c *Core) Graphemes() []string {
	out := make([]string, len(c.value))
	copy(out, c.value)
	return out
}

// RenderGraphemes returns the localized display string split per slot,
// aligned with slot indices for windowed widget rendering.
func (c *Core) RenderGraphemes() []string {
	return grapheme.Split(c.RenderValue())
}
