// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeRune maps a character to its canonical alphabet form: any
// whitespace (space, tab, newline, ...) becomes a single word gap and
// everything else is lowercased.
func NormalizeRune(r rune) rune {
	if unicode.IsSpace(r) {
		return ' '
	}

	return unicode.ToLower(r)
}

// foldChain decomposes a rune and strips its combining marks, so that
// accented characters fold to their plain ASCII base (á -> a, ü -> u).
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold transliterates a special character to its closest plain form by
// removing diacritical marks. Characters that do not decompose are
// returned unchanged; whether they are keyable is decided by the
// alphabet lookup afterwards.
func Fold(r rune) rune {
	folded, _, err := transform.String(foldChain, string(r))
	if err != nil || folded == "" {
		return r
	}

	first, _ := utf8.DecodeRuneInString(folded)
	if first == utf8.RuneError {
		return r
	}

	return first
}
