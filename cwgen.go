// SPDX-License-Identifier: EPL-2.0

package cwgen

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/rfwave/cwgen/formats/wav"
	"github.com/rfwave/cwgen/morse"
	"github.com/rfwave/cwgen/synth"
	"github.com/rfwave/cwgen/utils"
)

// Generate keys text and collects the whole rendered signal as 16-bit
// PCM. It is a convenience for short messages and tests; for long input
// use EncodeWAV, which streams with bounded memory.
//
// The rng drives jitter, drift and noise; nil seeds from the clock.
// bufferSize is the number of samples pulled per read (4096 is a good
// default).
func Generate(text string, keying morse.Config, sound synth.Config, rng *rand.Rand, bufferSize int) ([]int16, error) {
	src, err := NewSource(strings.NewReader(text), keying, sound, rng)
	if err != nil {
		return nil, err
	}

	// Estimate: one dot is 1200/wpm ms, a typical character keys about
	// ten dots plus the character gap.
	estimated := int(float64(sound.SampleRate) * float64(len(text)) * 13 * 1200 / keying.WPM / 1000)
	pcm16 := make([]int16, 0, max(estimated, bufferSize))
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	return pcm16, nil
}

// NewSource composes the full pipeline: a Keyer over the input text and
// a Synthesizer rendering its elements. The returned Source streams the
// signal on demand.
func NewSource(input io.RuneReader, keying morse.Config, sound synth.Config, rng *rand.Rand) (synth.Source, error) {
	key, err := morse.NewKeyer(input, keying, rng)
	if err != nil {
		return nil, err
	}

	return synth.NewSynthesizer(key, sound, rng)
}

// EncodeWAV streams the rendered signal for the input text into ws as a
// mono 16-bit WAV file, blockSize samples at a time.
func EncodeWAV(ws io.WriteSeeker, input io.RuneReader, keying morse.Config, sound synth.Config, rng *rand.Rand, blockSize int) error {
	src, err := NewSource(input, keying, sound, rng)
	if err != nil {
		return err
	}

	return wav.EncodeSource(ws, src, blockSize)
}
