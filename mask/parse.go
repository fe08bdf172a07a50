package mask

import (
	"fmt"

	"github.com/iw2rmb/filigree/internal/grapheme"
)

// MaskError is the recoverable error for a rejected mask pattern or an
// unrepresentable number edit. Pos is a grapheme position in the pattern,
// or -1 when the error did not originate from parsing.
type MaskError struct {
	Pos int
	Msg string
}

func (e *MaskError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("mask: %s at position %d", e.Msg, e.Pos)
	}
	return "mask: " + e.Msg
}

func parseErr(pos int, format string, args ...any) error {
	return &MaskError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse compiles a mask pattern into tokens, one per value slot, plus the
// trailing sentinel.
//
// Pattern characters: `0 9 # . , - + H h O o D d l a c _` compile to their
// kinds; space, `;`, `:` and `/` are literals; `\` escapes the next grapheme
// as a literal; unescaped non-ASCII graphemes are implicit literals. Any
// other ASCII character is rejected.
func Parse(pattern string) ([]Token, error) {
	clusters := grapheme.Split(pattern)
	tokens := make([]Token, 0, len(clusters)+1)

	// Digit slots fill right-to-left until a decimal separator flips the
	// direction; any non-number slot resets it.
	rtol := true

	for i := 0; i < len(clusters); i++ {
		g := clusters[i]

		if g == `\` {
			if i+1 >= len(clusters) {
				return nil, parseErr(i, "dangling escape")
			}
			i++
			tokens = append(tokens, Token{Kind: KindSeparator, Sep: clusters[i]})
			rtol = true
			continue
		}

		kind, ok := kindForSymbol(g)
		if !ok {
			if isASCII(g) {
				return nil, parseErr(i, "unrecognized pattern character %q", g)
			}
			// Implicit literal separator.
			tokens = append(tokens, Token{Kind: KindSeparator, Sep: g})
			rtol = true
			continue
		}

		t := Token{Kind: kind, Sep: ""}
		switch {
		case kind == KindDecimalSep:
			rtol = false
		case kind == KindSeparator:
			t.Sep = g
			rtol = true
		case !kind.IsNumber():
			rtol = true
		}
		if kind.IsNumberDigit() {
			t.RightToLeft = rtol
		}
		tokens = append(tokens, t)
	}

	tokens = append(tokens, Token{Kind: KindNone})
	assignSections(tokens)
	assignNumbers(tokens)
	for i := range tokens {
		t := &tokens[i]
		if t.Kind == KindSeparator {
			t.EditDefault = t.Sep
			t.DisplayDefault = t.Sep
			continue
		}
		t.EditDefault = t.Kind.editDefault()
		t.DisplayDefault = t.EditDefault
	}
	return tokens, nil
}

func kindForSymbol(g string) (Kind, bool) {
	switch g {
	case "0":
		return KindDigit0, true
	case "9":
		return KindDigit, true
	case "#":
		return KindNumeric, true
	case ".":
		return KindDecimalSep, true
	case ",":
		return KindGroupSep, true
	case "-":
		return KindSign, true
	case "+":
		return KindPlus, true
	case "H":
		return KindHex0, true
	case "h":
		return KindHex, true
	case "O":
		return KindOct0, true
	case "o":
		return KindOct, true
	case "D":
		return KindDec0, true
	case "d":
		return KindDec, true
	case "l":
		return KindLetter, true
	case "a":
		return KindLetterDigit, true
	case "_":
		return KindLetterDigitSpace, true
	case "c":
		return KindAnyChar, true
	case " ", ";", ":", "/":
		return KindSeparator, true
	}
	return KindNone, false
}

func isASCII(g string) bool {
	for _, r := range g {
		if r > 127 {
			return false
		}
	}
	return true
}

// assignSections splits the token list into maximal runs of identical
// kind/direction. Separators and the sentinel are always their own section.
func assignSections(tokens []Token) {
	sec := -1
	start := 0
	for i := range tokens {
		if i == 0 || sectionBreak(tokens[i-1], tokens[i]) {
			if i > 0 {
				closeSection(tokens, start, i)
			}
			sec++
			start = i
		}
		tokens[i].Sec = sec
	}
	closeSection(tokens, start, len(tokens))
}

func sectionBreak(prev, cur Token) bool {
	if cur.Kind == KindSeparator || cur.Kind == KindNone {
		return true
	}
	if prev.Kind == KindSeparator || prev.Kind == KindNone {
		return true
	}
	return prev.Kind != cur.Kind || prev.RightToLeft != cur.RightToLeft
}

func closeSection(tokens []Token, start, end int) {
	for i := start; i < end; i++ {
		tokens[i].SecStart = start
		tokens[i].SecEnd = end
	}
}

// assignNumbers groups slots into number fields. The categories are coarser
// than sections: a whole signed/grouped number is one range.
func assignNumbers(tokens []Token) {
	num := -1
	start := 0
	for i := range tokens {
		if i == 0 || numberBreak(tokens[i-1], tokens[i]) {
			if i > 0 {
				closeNumber(tokens, start, i)
			}
			num++
			start = i
		}
		tokens[i].Num = num
	}
	closeNumber(tokens, start, len(tokens))
}

func numberBreak(prev, cur Token) bool {
	if cur.Kind == KindSeparator || cur.Kind == KindNone {
		return true
	}
	if prev.Kind == KindSeparator || prev.Kind == KindNone {
		return true
	}
	return prev.Kind.IsNumber() != cur.Kind.IsNumber()
}

func closeNumber(tokens []Token, start, end int) {
	for i := start; i < end; i++ {
		tokens[i].NumStart = start
		tokens[i].NumEnd = end
	}
}
