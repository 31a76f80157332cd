// Package textwidth computes terminal display widths for runes and strings.
//
// Widths follow East-Asian-Wide conventions: fullwidth and wide CJK
// characters occupy two columns, combining marks and other zero-width
// characters occupy none, and everything else occupies one. Integer width
// is the number of decimal digits.
package textwidth

import (
	"unicode"

	"golang.org/x/text/width"
)

// Rune returns the number of terminal columns the rune occupies.
func Rune(r rune) int {
	switch {
	case r == 0:
		return 0
	case r < 0x20 || (r >= 0x7f && r < 0xa0):
		// Control characters, including CR. Tabs are expanded by the
		// reflow layer before widths are consulted.
		return 0
	case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Cf, r):
		return 0
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// String returns the sum of the widths of all runes in s.
func String(s string) int {
	w := 0
	for _, r := range s {
		w += Rune(r)
	}
	return w
}

// Int returns the number of columns needed to print n in decimal,
// including a leading minus sign for negative values.
func Int(n int) int {
	w := 1
	if n < 0 {
		w++
		n = -n
	}
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}
