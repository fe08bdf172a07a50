package buffer

import "sort"

// StyleID identifies one style definition owned by the rendering layer.
type StyleID int

// StyleSpan attaches a style to a document range. Spans may overlap.
type StyleSpan struct {
	Range Range
	ID    StyleID
}

// StyleMap stores styled ranges sorted by start position (ties broken by
// end, then ID). The sorted vector gives O(log n + k) point lookup and O(n)
// insert, which is the right trade for the span counts a form field sees.
type StyleMap struct {
	spans []StyleSpan
}

func (m *StyleMap) Len() int { return len(m.spans) }

// Spans returns the spans in sorted order. The slice is shared; callers
// must not mutate it.
func (m *StyleMap) Spans() []StyleSpan { return m.spans }

// Add inserts a span at its sorted position. Empty ranges are dropped.
func (m *StyleMap) Add(r Range, id StyleID) {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return
	}
	span := StyleSpan{Range: r, ID: id}
	i := sort.Search(len(m.spans), func(i int) bool {
		return lessSpan(span, m.spans[i])
	})
	m.spans = append(m.spans, StyleSpan{})
	copy(m.spans[i+1:], m.spans[i:])
	m.spans[i] = span
}

// Remove drops every span carrying id.
func (m *StyleMap) Remove(id StyleID) {
	out := m.spans[:0]
	for _, s := range m.spans {
		if s.ID != id {
			out = append(out, s)
		}
	}
	m.spans = out
}

func (m *StyleMap) Clear() { m.spans = nil }

// StylesAt returns the IDs of all spans containing p, in sorted-span order.
// Binary search finds the first span starting after p; the scan then walks
// backwards while spans still contain p. Containment is contiguous around p
// because spans are ordered by start.
func (m *StyleMap) StylesAt(p Pos) []StyleID {
	i := sort.Search(len(m.spans), func(i int) bool {
		return ComparePos(m.spans[i].Range.Start, p) > 0
	})

	var ids []StyleID
	for j := i - 1; j >= 0; j-- {
		if m.spans[j].Range.Contains(p) {
			ids = append(ids, m.spans[j].ID)
			continue
		}
		break
	}
	// Reverse into span order.
	for a, b := 0, len(ids)-1; a < b; a, b = a+1, b-1 {
		ids[a], ids[b] = ids[b], ids[a]
	}
	return ids
}

// ApplyEdit shifts every span through e and drops spans that collapse to
// empty. Order is preserved because shifting is monotone in document order.
func (m *StyleMap) ApplyEdit(e Edit) {
	out := m.spans[:0]
	for _, s := range m.spans {
		r := ShiftRange(s.Range, e)
		if r.IsEmpty() {
			continue
		}
		out = append(out, StyleSpan{Range: r, ID: s.ID})
	}
	m.spans = out
}

func lessSpan(a, b StyleSpan) bool {
	if c := ComparePos(a.Range.Start, b.Range.Start); c != 0 {
		return c < 0
	}
	if c := ComparePos(a.Range.End, b.Range.End); c != 0 {
		return c < 0
	}
	return a.ID < b.ID
}
