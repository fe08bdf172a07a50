package field

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/filigree/internal/grapheme"
	"github.com/iw2rmb/filigree/mask"
)

// MaskField is a Bubble Tea component over a mask.Core.
type MaskField struct {
	core   *mask.Core
	keys   KeyMap
	style  Style
	clip   Clipboard
	clicks ClickTracker

	focused  bool
	dragging bool
	outcome  Outcome
}

// NewMaskField compiles pattern into a focused field with default bindings,
// styles, and the system clipboard.
func NewMaskField(pattern string) (MaskField, error) {
	c := mask.New()
	if err := c.SetMask(pattern); err != nil {
		return MaskField{}, err
	}
	return MaskField{
		core:    c,
		keys:    DefaultKeyMap(),
		style:   DefaultStyle(),
		clip:    SystemClipboard{},
		focused: true,
	}, nil
}

// Core exposes the underlying editing core for host-driven configuration
// (symbols, display mask, programmatic values).
func (m MaskField) Core() *mask.Core { return m.core }

func (m MaskField) Value() string          { return m.core.Value() }
func (m MaskField) CondensedValue() string { return m.core.CondensedValue() }

// Outcome reports what the last Update call did.
func (m MaskField) Outcome() Outcome { return m.outcome }

func (m MaskField) Focused() bool { return m.focused }

func (m MaskField) Focus() MaskField {
	m.focused = true
	return m
}

func (m MaskField) Blur() MaskField {
	m.focused = false
	m.dragging = false
	return m
}

// SetWidth sets the visible window width in grapheme slots; 0 disables
// windowing.
func (m MaskField) SetWidth(w int) MaskField {
	m.core.SetWidth(w)
	return m
}

func (m MaskField) WithKeyMap(k KeyMap) MaskField {
	m.keys = k
	return m
}

func (m MaskField) WithStyle(s Style) MaskField {
	m.style = s
	return m
}

func (m MaskField) WithClipboard(c Clipboard) MaskField {
	m.clip = c
	return m
}

func (m MaskField) Init() tea.Cmd { return nil }

func (m MaskField) Update(msg tea.Msg) (MaskField, tea.Cmd) {
	m.outcome = OutcomeNotUsed
	if !m.focused {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.outcome = m.handleKey(msg)
	case tea.MouseMsg:
		m.outcome = m.handleMouse(msg)
	}
	return m, nil
}

func (m *MaskField) handleKey(msg tea.KeyMsg) Outcome {
	before := m.core.Value()
	var changed bool

	switch {
	case key.Matches(msg, m.keys.Left):
		changed = m.core.MovePrev(false)
	case key.Matches(msg, m.keys.Right):
		changed = m.core.MoveNext(false)
	case key.Matches(msg, m.keys.ShiftLeft):
		changed = m.core.MovePrev(true)
	case key.Matches(msg, m.keys.ShiftRight):
		changed = m.core.MoveNext(true)
	case key.Matches(msg, m.keys.WordLeft):
		changed = m.core.MoveWordPrev(false)
	case key.Matches(msg, m.keys.WordRight):
		changed = m.core.MoveWordNext(false)
	case key.Matches(msg, m.keys.Home):
		changed = m.core.MoveHome(false)
	case key.Matches(msg, m.keys.End):
		changed = m.core.MoveEnd(false)
	case key.Matches(msg, m.keys.ShiftHome):
		changed = m.core.MoveHome(true)
	case key.Matches(msg, m.keys.ShiftEnd):
		changed = m.core.MoveEnd(true)
	case key.Matches(msg, m.keys.Backspace):
		changed = m.core.RemovePrev()
	case key.Matches(msg, m.keys.Delete):
		changed = m.core.RemoveNext()
	case key.Matches(msg, m.keys.SelectAll):
		m.core.SelectAll()
		changed = true
	case key.Matches(msg, m.keys.Copy):
		m.copySelection()
	case key.Matches(msg, m.keys.Cut):
		m.copySelection()
		changed = m.core.RemoveSelection()
	case key.Matches(msg, m.keys.Paste):
		if text, err := m.clip.ReadText(); err == nil {
			changed = m.core.InsertText(text)
		}
	default:
		text := typedText(msg)
		if text == "" {
			return OutcomeNotUsed
		}
		changed = m.core.InsertText(text)
	}

	return classifyOutcome(before, m.core.Value(), changed)
}

func (m *MaskField) handleMouse(msg tea.MouseMsg) Outcome {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return OutcomeNotUsed
		}
		col := m.colForX(msg.X)
		var changed bool
		switch {
		case m.clicks.Click(msg.X, msg.Y, time.Now()):
			m.core.SelectWord(col)
			changed = true
		case msg.Shift:
			changed = m.core.SetCursor(col, true)
		default:
			changed = m.core.SetCursor(col, false)
			m.dragging = true
		}
		if changed {
			return OutcomeChanged
		}
		return OutcomeUnchanged

	case tea.MouseActionMotion:
		if !m.dragging {
			return OutcomeNotUsed
		}
		m.clicks.Reset()
		if m.core.SetCursor(m.colForX(msg.X), true) {
			return OutcomeChanged
		}
		return OutcomeUnchanged

	case tea.MouseActionRelease:
		m.dragging = false
		return OutcomeUnchanged
	}
	return OutcomeNotUsed
}

// colForX maps an x cell offset relative to the field's first rendered cell
// to a grapheme slot index.
func (m *MaskField) colForX(x int) int {
	gs := m.core.RenderGraphemes()
	off := m.core.Offset()
	visible := gs
	if off <= len(gs) {
		visible = gs[off:]
	}
	if w := m.core.Width(); w > 0 && w < len(visible) {
		visible = visible[:w]
	}
	return off + colAtCell(visible, x)
}

// CursorCell returns the cursor's cell offset from the field's first
// rendered cell, for hosts that place a terminal cursor over the view.
func (m MaskField) CursorCell() int {
	gs := m.core.RenderGraphemes()
	off := m.core.Offset()
	if off > len(gs) {
		off = len(gs)
	}
	return cellAtCol(gs[off:], m.core.Cursor()-off)
}

func (m *MaskField) copySelection() {
	start, end := m.core.Selection()
	if start == end {
		return
	}
	gs := m.core.Graphemes()
	// Clipboard failures must not crash the UI.
	_ = m.clip.WriteText(grapheme.Join(gs[start:end]))
}

func (m MaskField) View() string {
	selStart, selEnd := m.core.Selection()
	return renderLine(lineState{
		graphemes:   m.core.RenderGraphemes(),
		offset:      m.core.Offset(),
		width:       m.core.Width(),
		selStart:    selStart,
		selEnd:      selEnd,
		cursor:      m.core.Cursor(),
		focused:     m.focused,
		placeholder: m.core.SlotEmpty,
	}, m.style)
}

// typedText extracts insertable text from a key message, or "" when the key
// does not carry text.
func typedText(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return ""
		}
		return string(msg.Runes)
	case tea.KeySpace:
		return " "
	default:
		return ""
	}
}
