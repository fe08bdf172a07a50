package field

import "strings"

// lineState is everything the shared single-line renderer needs. Indices
// are grapheme positions; offset/width describe the scroll window in
// grapheme slots (width 0 renders everything).
type lineState struct {
	graphemes []string
	offset    int
	width     int

	selStart int
	selEnd   int
	cursor   int
	focused  bool

	// placeholder reports whether position i renders in placeholder style.
	placeholder func(i int) bool
}

func renderLine(ls lineState, st Style) string {
	end := len(ls.graphemes)
	if ls.width > 0 && ls.offset+ls.width < end {
		end = ls.offset + ls.width
	}
	start := ls.offset
	if start > end {
		start = end
	}

	var sb strings.Builder
	for i := start; i < end; i++ {
		g := ls.graphemes[i]
		switch {
		case ls.focused && i == ls.cursor:
			sb.WriteString(st.Cursor.Render(g))
		case ls.selStart <= i && i < ls.selEnd:
			sb.WriteString(st.Selection.Render(g))
		case ls.placeholder != nil && ls.placeholder(i):
			sb.WriteString(st.Placeholder.Render(g))
		default:
			sb.WriteString(st.Text.Render(g))
		}
	}

	// The cursor can sit one past the window or the value; paint it as a
	// trailing cell so it stays visible.
	if ls.focused && ls.cursor >= end {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}
