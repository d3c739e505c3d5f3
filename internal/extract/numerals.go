// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// firstYear is the era-year spelling for year 1 (令和元年).
const firstYear = "元"

// numeralClass matches one or more ASCII or full-width digits in a regexp.
const numeralClass = `[0-9０-９]+`

// spaceClass matches optional ASCII whitespace and the ideographic space.
const spaceClass = `[\s\x{3000}]*`

// FoldDigits narrows full-width characters so "１２" becomes "12".
func FoldDigits(s string) string {
	return width.Narrow.String(s)
}

// ParseNumeral converts an ASCII or full-width digit string to an int.
// It reports false for empty input, non-digits, or values that overflow.
func ParseNumeral(s string) (int, bool) {
	if s == firstYear {
		return 1, true
	}
	folded := strings.TrimSpace(FoldDigits(s))
	if folded == "" {
		return 0, false
	}
	for _, r := range folded {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(folded)
	if err != nil {
		return 0, false
	}
	return n, true
}

// runePrefix returns at most n runes from the start of s.
func runePrefix(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
