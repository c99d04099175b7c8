// SPDX-License-Identifier: EPL-2.0

package cwgen_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rfwave/cwgen"
	"github.com/rfwave/cwgen/morse"
	"github.com/rfwave/cwgen/synth"
)

// Example_basicUsage renders a short message to 16-bit PCM.
func Example_basicUsage() {
	pcm16, err := cwgen.Generate("sos",
		morse.Config{WPM: 12},
		synth.Config{SampleRate: 8000, Frequency: 600, Amplitude: 0.5},
		nil, 4096)
	if err != nil {
		fmt.Printf("generate error: %v\n", err)
		return
	}

	fmt.Printf("Generated %d samples at %d Hz\n", len(pcm16), 8000)
	fmt.Printf("Duration: %.2f seconds\n", float64(len(pcm16))/8000)
	// Output:
	// Generated 24000 samples at 8000 Hz
	// Duration: 3.00 seconds
}

// Example_timedElements inspects the keying stream before synthesis.
func Example_timedElements() {
	key, err := morse.NewKeyer(strings.NewReader("e"), morse.Config{WPM: 12}, nil)
	if err != nil {
		fmt.Printf("keyer error: %v\n", err)
		return
	}

	buf := make([]morse.Element, 8)
	for {
		n, err := key.ReadElements(buf)
		for _, elem := range buf[:n] {
			fmt.Printf("tone=%v duration=%.0fms\n", elem.Tone, elem.Millis)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("read error: %v\n", err)
			return
		}
	}

	// Output:
	// tone=true duration=100ms
	// tone=false duration=300ms
}

// Example_errorHandling demonstrates the fatal unknown-character error.
func Example_errorHandling() {
	_, err := cwgen.Generate("hello 🙂",
		morse.Config{WPM: 12},
		synth.Config{SampleRate: 8000, Frequency: 600, Amplitude: 0.5},
		nil, 4096)

	if errors.Is(err, morse.ErrUnknownCharacter) {
		fmt.Println("message contains an unkeyable character")
	}
	// Output: message contains an unkeyable character
}

// Example_transliteration folds accented characters onto the plain
// alphabet instead of failing.
func Example_transliteration() {
	pcm16, err := cwgen.Generate("café",
		morse.Config{WPM: 12, Fold: true},
		synth.Config{SampleRate: 8000, Frequency: 600, Amplitude: 0.5},
		nil, 4096)
	if err != nil {
		fmt.Printf("generate error: %v\n", err)
		return
	}

	fmt.Printf("Keyed %d samples\n", len(pcm16))
	// Output: Keyed 30400 samples
}
