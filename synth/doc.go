// SPDX-License-Identifier: EPL-2.0

// Package synth renders timed keying elements as a PCM audio stream.
//
// This package implements the signal half of the CW pipeline. It consumes
// a morse.ElementReader and produces mono float32 samples in [-1, 1]
// through the pull-based Source interface, ready for quantization to
// 16-bit PCM at a sink.
//
// # Source Interface
//
// The Source interface is the foundation of the audio side:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sinks (WAV encoding, playback) consume any Source, so they work equally
// for a hand-authored element script and for keyed text.
//
// # Tone Generation
//
// Tones come from a lookup table holding exactly one period of a sine
// wave at the requested frequency and amplitude. The table is replayed
// cyclically one sample per pull, which keeps the phase continuous for
// the whole duration of a tone without ever precomputing the full signal.
// Each new tone element restarts the table at index zero; the oscillator
// is not phase-locked across elements.
//
// # Noise
//
// Optional background noise comes in five colors: white, pink, blue,
// brown and violet. A one-second block is generated once, normalized to
// unit standard deviation, scaled, and cycled as an infinite sequence.
// Noise is mixed by sample-wise addition over tones and silences alike.
//
// # Streaming
//
// The Synthesizer resolves one element at a time: the sample count of the
// current element is the only synthesis state in flight, so memory use is
// bounded no matter how long the input text or the output signal gets.
//
//	key, _ := morse.NewKeyer(input, morse.Config{WPM: 12}, nil)
//	src, err := synth.NewSynthesizer(key, synth.Config{
//	    SampleRate: 22050,
//	    Frequency:  600,
//	    Amplitude:  0.5,
//	}, nil)
//
//	buf := make([]float32, 4096)
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // quantize and write buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// # Errors
//
// Configuration problems (a frequency above the Nyquist limit, an
// amplitude outside [0, 1]) are rejected by the constructors before any
// sample is produced. Errors from the element stream, including
// morse.ErrUnknownCharacter, abort the sample stream; there is no
// substitute-and-continue mode.
package synth
