package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	if start >= idx {
		return ""
	}
	return sb.String()
}

// At returns the i-th grapheme cluster of text, or "" when out of range.
func At(text string, i int) string {
	if i < 0 || text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		if idx == i {
			return g.Str()
		}
		idx++
	}
	return ""
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether all runes in cluster are Unicode punctuation.
func IsPunct(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return true
}

// IsWordChar reports whether the cluster counts as part of a word for
// word-boundary movement: its first rune is a letter or digit.
func IsWordChar(cluster string) bool {
	for _, r := range cluster {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}

// NextWordBoundary returns the first index >= col in line where the
// word/non-word classification changes.
func NextWordBoundary(line []string, col int) int {
	if col < 0 {
		col = 0
	}
	if col >= len(line) {
		return len(line)
	}
	class := IsWordChar(line[col])
	i := col + 1
	for i < len(line) && IsWordChar(line[i]) == class {
		i++
	}
	return i
}

// PrevWordBoundary returns the last index <= col in line where the
// word/non-word classification changes.
func PrevWordBoundary(line []string, col int) int {
	if col > len(line) {
		col = len(line)
	}
	if col <= 0 {
		return 0
	}
	class := IsWordChar(line[col-1])
	i := col - 1
	for i > 0 && IsWordChar(line[i-1]) == class {
		i--
	}
	return i
}
