package mask

import "unicode"

// Kind identifies the semantic of one mask slot.
type Kind uint8

const (
	// KindNone marks the trailing sentinel slot. It is never editable but is
	// a valid cursor position (end of field).
	KindNone Kind = iota

	KindDigit0  // `0`: decimal digit, zero-filled when empty
	KindDigit   // `9`: decimal digit or blank
	KindNumeric // `#`: decimal digit; may carry the number's sign

	KindDecimalSep // `.`: decimal separator, fixed
	KindGroupSep   // `,`: grouping separator, shown only when needed
	KindSign       // `-`: minus or blank
	KindPlus       // `+`: plus or minus

	KindHex0 // `H`: hex digit, zero-filled
	KindHex  // `h`: hex digit or blank
	KindOct0 // `O`: octal digit, zero-filled
	KindOct  // `o`: octal digit or blank
	KindDec0 // `D`: decimal digit, zero-filled (plain field, no number semantics)
	KindDec  // `d`: decimal digit or blank (plain field)

	KindLetter           // `l`: letter
	KindLetterDigit      // `a`: letter or digit
	KindLetterDigitSpace // `_`: letter, digit, or space
	KindAnyChar          // `c`: any printable grapheme

	KindSeparator // literal text
)

// IsNumber reports whether the kind participates in a number field
// (digits, separators, and signs that the numeric remapper manages).
func (k Kind) IsNumber() bool {
	switch k {
	case KindDigit0, KindDigit, KindNumeric, KindDecimalSep, KindGroupSep, KindSign, KindPlus:
		return true
	}
	return false
}

// IsNumberDigit reports whether the kind is a digit slot inside a number field.
func (k Kind) IsNumberDigit() bool {
	switch k {
	case KindDigit0, KindDigit, KindNumeric:
		return true
	}
	return false
}

// IsSign reports whether the kind is a dedicated sign slot.
func (k Kind) IsSign() bool {
	return k == KindSign || k == KindPlus
}

// IsSeparator reports whether the kind renders fixed, non-editable text.
func (k Kind) IsSeparator() bool {
	switch k {
	case KindSeparator, KindGroupSep, KindDecimalSep:
		return true
	}
	return false
}

// IsEditable reports whether a slot of this kind can receive typed input
// directly. Sign slots count; separators and the sentinel do not.
func (k Kind) IsEditable() bool {
	switch k {
	case KindNone, KindSeparator, KindGroupSep, KindDecimalSep:
		return false
	}
	return true
}

// editDefault is the canonical slot content for an empty slot.
func (k Kind) editDefault() string {
	switch k {
	case KindDigit0, KindHex0, KindOct0, KindDec0:
		return "0"
	case KindDecimalSep:
		return "."
	case KindPlus:
		return "+"
	case KindNone:
		return ""
	default:
		return " "
	}
}

// symbol is the pattern character that compiles to this kind.
func (k Kind) symbol() string {
	switch k {
	case KindDigit0:
		return "0"
	case KindDigit:
		return "9"
	case KindNumeric:
		return "#"
	case KindDecimalSep:
		return "."
	case KindGroupSep:
		return ","
	case KindSign:
		return "-"
	case KindPlus:
		return "+"
	case KindHex0:
		return "H"
	case KindHex:
		return "h"
	case KindOct0:
		return "O"
	case KindOct:
		return "o"
	case KindDec0:
		return "D"
	case KindDec:
		return "d"
	case KindLetter:
		return "l"
	case KindLetterDigit:
		return "a"
	case KindLetterDigitSpace:
		return "_"
	case KindAnyChar:
		return "c"
	default:
		return ""
	}
}

// accepts reports whether the canonical grapheme g is a valid edit character
// for a slot of this kind.
func (k Kind) accepts(g string) bool {
	r := firstRune(g)
	switch k {
	case KindDigit0, KindDigit, KindNumeric, KindDec0, KindDec:
		return r >= '0' && r <= '9'
	case KindHex0, KindHex:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	case KindOct0, KindOct:
		return r >= '0' && r <= '7'
	case KindLetter:
		return unicode.IsLetter(r)
	case KindLetterDigit:
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	case KindLetterDigitSpace:
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' '
	case KindAnyChar:
		return r != 0 && !unicode.IsControl(r)
	default:
		return false
	}
}

// Token is one compiled mask slot.
//
// Sec ranges partition the mask into editing sections (homogeneous
// kind/direction runs); Num ranges partition it coarser into number fields.
// All ranges are half-open slot index spans.
type Token struct {
	Kind Kind
	Sep  string // literal text for KindSeparator

	// RightToLeft marks digit slots that fill from the decimal point outward.
	RightToLeft bool

	Sec      int
	SecStart int
	SecEnd   int

	Num      int
	NumStart int
	NumEnd   int

	EditDefault    string
	DisplayDefault string
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func isDecDigit(g string) bool {
	r := firstRune(g)
	return r >= '0' && r <= '9'
}

func isSignChar(g string) bool {
	return g == "-" || g == "+"
}
