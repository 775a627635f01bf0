package svgpattern

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// keySpace is the whitespace class of ECMAScript regular expressions
// (\s): the Unicode White_Space property minus U+0085, plus U+FEFF.
var keySpace = rangetable.New(
	'\t', '\n', '\v', '\f', '\r', ' ',
	'\u00a0', '\u1680',
	'\u2000', '\u2001', '\u2002', '\u2003', '\u2004', '\u2005',
	'\u2006', '\u2007', '\u2008', '\u2009', '\u200a',
	'\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff',
)

// SanitizeKey makes a pattern key usable inside an element id by
// replacing every whitespace character with '-'. Nothing else changes,
// so "a b" and "a-b" name the same pattern.
func SanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(keySpace, r) {
			return '-'
		}
		return r
	}, key)
}
