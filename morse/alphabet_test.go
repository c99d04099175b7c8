// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"errors"
	"testing"
)

func TestLookup_CanonicalTable(t *testing.T) {
	t.Parallel()

	// Full International Morse Code table for the supported alphabet.
	tests := []struct {
		char rune
		want string
	}{
		{'a', ".-"},
		{'b', "-..."},
		{'c', "-.-."},
		{'d', "-.."},
		{'e', "."},
		{'f', "..-."},
		{'g', "--."},
		{'h', "...."},
		{'i', ".."},
		{'j', ".---"},
		{'k', "-.-"},
		{'l', ".-.."},
		{'m', "--"},
		{'n', "-."},
		{'o', "---"},
		{'p', ".--."},
		{'q', "--.-"},
		{'r', ".-."},
		{'s', "..."},
		{'t', "-"},
		{'u', "..-"},
		{'v', "...-"},
		{'w', ".--"},
		{'x', "-..-"},
		{'y', "-.--"},
		{'z', "--.."},
		{' ', " "},
		{',', "--..--"},
		{'?', "..--.."},
		{'.', ".-.-.-"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.char), func(t *testing.T) {
			t.Parallel()

			got, err := Lookup(tt.char)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.char, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.char, got, tt.want)
			}
		})
	}

	if len(Code) != len(tests) {
		t.Errorf("Code has %d entries, want %d", len(Code), len(tests))
	}
}

func TestLookup_UnknownCharacter(t *testing.T) {
	t.Parallel()

	for _, char := range []rune{'!', '#', '@', '0', '🙂', 'á'} {
		_, err := Lookup(char)
		if !errors.Is(err, ErrUnknownCharacter) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownCharacter", char, err)
		}
	}
}

func TestLookup_PatternSymbols(t *testing.T) {
	t.Parallel()

	// Every pattern must consist of known symbols only.
	for char, pattern := range Code {
		for _, sym := range pattern {
			switch sym {
			case Dot, Dash, WordGap:
			default:
				t.Errorf("Code[%q] contains unexpected symbol %q", char, sym)
			}
		}
	}
}
