package field

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/filigree/internal/grapheme"
	"github.com/iw2rmb/filigree/lineinput"
)

// TextField is a Bubble Tea component over a lineinput.Core: a free-text
// single-line input with the same key and mouse surface as MaskField.
type TextField struct {
	core   *lineinput.Core
	keys   KeyMap
	style  Style
	clip   Clipboard
	clicks ClickTracker

	// Placeholder is rendered in placeholder style while the value is empty.
	Placeholder string

	focused  bool
	dragging bool
	outcome  Outcome
}

func NewTextField() TextField {
	return TextField{
		core:    lineinput.New(),
		keys:    DefaultKeyMap(),
		style:   DefaultStyle(),
		clip:    SystemClipboard{},
		focused: true,
	}
}

// Core exposes the underlying editing core.
func (m TextField) Core() *lineinput.Core { return m.core }

func (m TextField) Value() string { return m.core.Value() }

func (m TextField) SetValue(s string) TextField {
	m.core.SetValue(s)
	return m
}

// Outcome reports what the last Update call did.
func (m TextField) Outcome() Outcome { return m.outcome }

func (m TextField) Focused() bool { return m.focused }

func (m TextField) Focus() TextField {
	m.focused = true
	return m
}

func (m TextField) Blur() TextField {
	m.focused = false
	m.dragging = false
	return m
}

// SetWidth sets the visible window width in grapheme clusters; 0 disables
// windowing.
func (m TextField) SetWidth(w int) TextField {
	m.core.SetWidth(w)
	return m
}

func (m TextField) WithKeyMap(k KeyMap) TextField {
	m.keys = k
	return m
}

func (m TextField) WithStyle(s Style) TextField {
	m.style = s
	return m
}

func (m TextField) WithClipboard(c Clipboard) TextField {
	m.clip = c
	return m
}

func (m TextField) Init() tea.Cmd { return nil }

func (m TextField) Update(msg tea.Msg) (TextField, tea.Cmd) {
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

func (m *TextField) handleKey(msg tea.KeyMsg) Outcome {
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

func (m *TextField) handleMouse(msg tea.MouseMsg) Outcome {
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

func (m *TextField) colForX(x int) int {
	gs := m.core.Graphemes()
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
func (m TextField) CursorCell() int {
	gs := m.core.Graphemes()
	off := m.core.Offset()
	if off > len(gs) {
		off = len(gs)
	}
	return cellAtCol(gs[off:], m.core.Cursor()-off)
}

func (m *TextField) copySelection() {
	if text := m.core.SelectedText(); text != "" {
		// Clipboard failures must not crash the UI.
		_ = m.clip.WriteText(text)
	}
}

func (m TextField) View() string {
	if m.core.Len() == 0 && m.Placeholder != "" {
		ph := grapheme.Split(m.Placeholder)
		return renderLine(lineState{
			graphemes:   ph,
			cursor:      0,
			focused:     m.focused,
			placeholder: func(int) bool { return true },
		}, m.style)
	}
	selStart, selEnd := m.core.Selection()
	return renderLine(lineState{
		graphemes: m.core.Graphemes(),
		offset:    m.core.Offset(),
		width:     m.core.Width(),
		selStart:  selStart,
		selEnd:    selEnd,
		cursor:    m.core.Cursor(),
		focused:   m.focused,
	}, m.style)
}
