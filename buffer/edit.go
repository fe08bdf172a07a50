package buffer

import (
	"strings"

	"github.com/iw2rmb/filigree/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
// The applied edit (if any) is returned for position shifting.
func (b *Buffer) InsertText(s string) (Edit, bool) {
	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	if s == "" && r.IsEmpty() {
		return Edit{}, false
	}

	nextCursor, edit, changed := b.replaceRange(r, s)
	if !changed {
		return Edit{}, false
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	return edit, true
}

// InsertGrapheme inserts a single grapheme cluster at the cursor, or replaces
// the active selection.
func (b *Buffer) InsertGrapheme(g string) (Edit, bool) {
	if g == "" {
		return Edit{}, false
	}
	return b.InsertText(g)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() (Edit, bool) {
	return b.InsertText("\n")
}

// DeleteBackward applies backspace semantics: selection first, then the
// grapheme left of the cursor, joining lines across a row boundary.
func (b *Buffer) DeleteBackward() (Edit, bool) {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}

	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return Edit{}, false
	}

	var r Range
	if col > 0 {
		r = Range{Start: Pos{Row: row, Col: col - 1}, End: Pos{Row: row, Col: col}}
	} else {
		prevRow := row - 1
		r = Range{Start: Pos{Row: prevRow, Col: len(b.lines[prevRow])}, End: Pos{Row: row, Col: 0}}
	}
	return b.deleteRange(r)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() (Edit, bool) {
	if _, ok := b.Selection(); ok {
		return b.DeleteSelection()
	}

	row, col := b.cursor.Row, b.cursor.Col
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return Edit{}, false
	}

	var r Range
	if col < len(b.lines[row]) {
		r = Range{Start: Pos{Row: row, Col: col}, End: Pos{Row: row, Col: col + 1}}
	} else {
		r = Range{Start: Pos{Row: row, Col: col}, End: Pos{Row: row + 1, Col: 0}}
	}
	return b.deleteRange(r)
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() (Edit, bool) {
	r, ok := b.Selection()
	if !ok {
		return Edit{}, false
	}
	return b.deleteRange(r)
}

func (b *Buffer) deleteRange(r Range) (Edit, bool) {
	nextCursor, edit, changed := b.replaceRange(r, "")
	if !changed {
		return Edit{}, false
	}
	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	return edit, true
}

// TextInRange returns the document text covered by r.
func (b *Buffer) TextInRange(r Range) string {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	return textForLinesRange(b.lines, r)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, edit Edit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, Edit{}, false
	}
	if textForLinesRange(b.lines, r) == text {
		return b.cursor, Edit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]string(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]string, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]string{nil}
	}

	b.lines = out
	edit = Edit{Removed: r, InsertEnd: nextCursor}
	return nextCursor, edit, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow := r.Start.Row
	endRow := r.End.Row
	startCol := r.Start.Col
	endCol := r.End.Col

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart := 0
		partEnd := len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
