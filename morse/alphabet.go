// SPDX-License-Identifier: EPL-2.0

package morse

import "fmt"

// Pattern symbols. A pattern is a string of these, e.g. "-.-." for 'c'.
const (
	Dot     = '.'
	Dash    = '-'
	WordGap = ' '
)

// Code maps a canonical character (lowercase letter, space or supported
// punctuation) to its International Morse Code pattern. Space maps to a
// single word-gap symbol.
var Code = map[rune]string{
	'a': ".-",
	'b': "-...",
	'c': "-.-.",
	'd': "-..",
	'e': ".",
	'f': "..-.",
	'g': "--.",
	'h': "....",
	'i': "..",
	'j': ".---",
	'k': "-.-",
	'l': ".-..",
	'm': "--",
	'n': "-.",
	'o': "---",
	'p': ".--.",
	'q': "--.-",
	'r': ".-.",
	's': "...",
	't': "-",
	'u': "..-",
	'v': "...-",
	'w': ".--",
	'x': "-..-",
	'y': "-.--",
	'z': "--..",
	' ': " ",
	',': "--..--",
	'?': "..--..",
	'.': ".-.-.-",
}

// Lookup returns the Morse pattern for a canonical character.
// The character must already be normalized (see NormalizeRune).
func Lookup(r rune) (string, error) {
	pattern, ok := Code[r]
	if !ok {
		return "", fmt.Errorf("%q: %w", r, ErrUnknownCharacter)
	}

	return pattern, nil
}
