// Package roman converts between integers and Roman numerals.
//
// The supported domain is [1, 3999], the range expressible in standard
// subtractive notation. Within it, FromRoman(ToRoman(n)) == n for every n.
//
// Errors (sentinel):
//
//	– ErrOutOfRange     if ToRoman is called with n < 1 or n > 3999.
//	– ErrInvalidNumeral if FromRoman is given a malformed or non-canonical
//	  numeral ("IIII", "VX", "IL", ...).
package roman

import (
	"errors"
	"strings"
)

var (
	// ErrOutOfRange indicates the integer lies outside [1, 3999].
	ErrOutOfRange = errors.New("roman: value must be in [1, 3999]")
	// ErrInvalidNumeral indicates a malformed or non-canonical Roman numeral.
	ErrInvalidNumeral = errors.New("roman: invalid numeral")
)

// denominations in descending order, subtractive pairs included, so a
// greedy scan produces the canonical spelling directly.
var denominations = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// ToRoman returns the canonical Roman numeral for n in [1, 3999].
func ToRoman(n int) (string, error) {
	if n < 1 || n > 3999 {
		return "", ErrOutOfRange
	}
	var b strings.Builder
	for _, d := range denominations {
		for n >= d.value {
			b.WriteString(d.symbol)
			n -= d.value
		}
	}

	return b.String(), nil
}

// FromRoman parses a canonical Roman numeral back to its integer value.
// Parsing is strict: the input must equal ToRoman of the decoded value, so
// over-long spellings like "IIII" or invalid subtractions like "IL" are
// rejected with ErrInvalidNumeral.
func FromRoman(s string) (int, error) {
	if s == "" {
		return 0, ErrInvalidNumeral
	}
	values := map[byte]int{
		'I': 1, 'V': 5, 'X': 10, 'L': 50,
		'C': 100, 'D': 500, 'M': 1000,
	}
	total := 0
	for i := 0; i < len(s); i++ {
		v, ok := values[s[i]]
		if !ok {
			return 0, ErrInvalidNumeral
		}
		// A symbol before a larger one subtracts (IV, IX, XL, ...).
		if i+1 < len(s) && values[s[i+1]] > v {
			total -= v
		} else {
			total += v
		}
	}
	if total < 1 || total > 3999 {
		return 0, ErrInvalidNumeral
	}
	// Round-trip check enforces canonical form.
	canonical, err := ToRoman(total)
	if err != nil || canonical != s {
		return 0, ErrInvalidNumeral
	}

	return total, nil
}
