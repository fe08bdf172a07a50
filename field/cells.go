package field

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellWidth returns the terminal-cell width of one grapheme cluster.
func cellWidth(g string) int {
	w := runewidth.StringWidth(g)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports 0 for some joined emoji; uniseg knows better.
		if fallback := uniseg.StringWidth(g); fallback > w {
			w = fallback
		}
	}
	return w
}

// colAtCell maps a cell offset into a grapheme run to the index of the
// grapheme covering that cell. Offsets past the run map to len(gs), so a
// click behind the text lands at the end.
func colAtCell(gs []string, x int) int {
	if x < 0 {
		return 0
	}
	cell := 0
	for i, g := range gs {
		w := cellWidth(g)
		if x < cell+w {
			return i
		}
		cell += w
	}
	return len(gs)
}

// cellAtCol returns the cell offset of the col-th grapheme in the run.
func cellAtCol(gs []string, col int) int {
	if col < 0 {
		return 0
	}
	cell := 0
	for i, g := range gs {
		if i >= col {
			break
		}
		cell += cellWidth(g)
	}
	return cell
}
