// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"io"
	"math"
	"math/rand"

	"github.com/rfwave/cwgen/morse"
)

// Config holds the synthesis parameters.
type Config struct {
	// SampleRate of the output PCM stream in Hz.
	SampleRate int
	// Frequency of the CW tone in Hz. Must not exceed SampleRate/2.
	Frequency float64
	// Amplitude of the tone, 0..1 of full scale.
	Amplitude float64
	// NoiseKind selects the background noise color. Only consulted when
	// NoiseLevel is positive.
	NoiseKind NoiseKind
	// NoiseLevel is the noise amplitude, 0..1. Zero disables noise.
	NoiseLevel float64
}

// Synthesizer converts a stream of keying elements into mono float32
// samples. It implements Source. Elements resolve strictly in order, one
// at a time; only the cursor state of the current element is held in
// memory, never the whole signal.
type Synthesizer struct {
	elems morse.ElementReader
	osc   *Oscillator
	noise *Noise

	sampleRate int

	// Current element state.
	remaining int
	toneOn    bool

	buf [1]morse.Element
	eof bool
	// pendingErr holds a stream error delivered alongside an element;
	// that element is still rendered before the error surfaces.
	pendingErr error
	err        error
}

// NewSynthesizer validates cfg and builds the tone table and, when
// NoiseLevel is positive, the noise block. All configuration errors
// surface here, before any sample is produced. The rng seeds the noise
// block; it is unused when noise is disabled.
func NewSynthesizer(elems morse.ElementReader, cfg Config, rng *rand.Rand) (*Synthesizer, error) {
	osc, err := NewOscillator(cfg.Frequency, cfg.Amplitude, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	var noise *Noise
	if cfg.NoiseLevel != 0 {
		noise, err = NewNoise(cfg.NoiseKind, cfg.SampleRate, cfg.NoiseLevel, rng)
		if err != nil {
			return nil, err
		}
	}

	return &Synthesizer{
		elems:      elems,
		osc:        osc,
		noise:      noise,
		sampleRate: cfg.SampleRate,
	}, nil
}

func (s *Synthesizer) SampleRate() int { return s.sampleRate }
func (s *Synthesizer) Channels() int   { return 1 }
func (s *Synthesizer) BufSize() int    { return 4096 }
func (s *Synthesizer) Close() error    { return nil }

// SampleCount converts an element duration in milliseconds to its exact
// sample count at the given rate. Silences use the same conversion as
// tones, so the rendered signal stays aligned with the timing stream to
// the sample.
func SampleCount(millis float64, sampleRate int) int {
	return int(math.Round(millis * float64(sampleRate) / 1000))
}

// ReadSamples fills dst with the next samples of the rendered signal.
// It returns io.EOF once the element stream is exhausted. Errors from
// the element stream are fatal and returned as-is.
func (s *Synthesizer) ReadSamples(dst []float32) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if s.remaining == 0 {
			if s.eof {
				break
			}
			if err := s.nextElement(); err != nil {
				s.err = err
				return n, err
			}
			continue
		}

		take := min(len(dst)-n, s.remaining)
		if s.toneOn {
			for i := 0; i < take; i++ {
				dst[n+i] = s.osc.Next()
			}
		} else {
			for i := 0; i < take; i++ {
				dst[n+i] = 0
			}
		}
		if s.noise != nil {
			for i := 0; i < take; i++ {
				dst[n+i] += s.noise.Next()
			}
		}

		n += take
		s.remaining -= take
	}

	if s.eof && s.remaining == 0 {
		return n, io.EOF
	}

	return n, nil
}

// nextElement pulls the next element and primes the sample cursor. A
// tone element restarts the oscillator table at index zero.
func (s *Synthesizer) nextElement() error {
	if s.pendingErr != nil {
		return s.pendingErr
	}

	m, err := s.elems.ReadElements(s.buf[:])
	if m > 0 {
		elem := s.buf[0]
		s.remaining = SampleCount(elem.Millis, s.sampleRate)
		s.toneOn = elem.Tone
		if s.toneOn {
			s.osc.Reset()
		}

		switch {
		case err == io.EOF:
			s.eof = true
		case err != nil:
			s.pendingErr = err
		}

		return nil
	}

	if err == io.EOF {
		s.eof = true
		return nil
	}

	return err
}
