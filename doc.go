// SPDX-License-Identifier: EPL-2.0

// Package cwgen generates CW (Morse code) audio from text.
//
// The pipeline has two halves, composed strictly one-way: the morse
// package keys text into a stream of timed on/off elements, and the
// synth package renders that stream as mono PCM samples. Sinks consume
// the result: formats/wav writes a WAV file, formats/csvlog logs the
// raw element timings, and playback feeds the system audio device.
//
// # Quick Start
//
// The simplest way to render a message is Generate:
//
//	pcm16, err := cwgen.Generate("cq cq de paris",
//	    morse.Config{WPM: 12},
//	    synth.Config{SampleRate: 22050, Frequency: 600, Amplitude: 0.5},
//	    nil, 4096)
//
//	// pcm16 is now mono 16-bit PCM at 22050 Hz
//
// For long messages, stream directly into a file instead of collecting
// samples in memory:
//
//	out, _ := os.Create("message.wav")
//	defer out.Close()
//	err := cwgen.EncodeWAV(out, input,
//	    morse.Config{WPM: 12},
//	    synth.Config{SampleRate: 22050, Frequency: 600, Amplitude: 0.5},
//	    nil, 4096)
//
// # Human Imperfections
//
// A real operator neither keys perfectly even symbols nor holds an exact
// speed. Both effects are modeled and off by default:
//
//	morse.Config{
//	    WPM:    12,
//	    Jitter: 0.15, // per-symbol length deviation
//	    Drift:  0.02, // per-character speed random walk
//	    MinWPM: 10,   // clamp the walk
//	    MaxWPM: 15,
//	}
//
// All randomness flows from an injected *rand.Rand, so a fixed seed
// reproduces a message bit for bit; passing nil seeds from the clock.
//
// # Background Noise
//
// Band-limited toneless audio is suspicious on the air. The synthesizer
// mixes in colored noise when asked:
//
//	synth.Config{
//	    SampleRate: 22050,
//	    Frequency:  600,
//	    Amplitude:  0.5,
//	    NoiseKind:  synth.NoisePink,
//	    NoiseLevel: 0.3,
//	}
//
// # Streaming
//
// Every stage is a pull-based stream: the keyer reads runes on demand,
// the synthesizer resolves one element at a time, and sinks pull sample
// blocks. Memory use is bounded by the block size regardless of how long
// the input text or the output signal is.
//
// # Error Handling
//
// A character with no Morse pattern, an amplitude outside [0, 1] or a
// tone above the Nyquist limit abort the run; partial Morse output would
// desynchronize all later spacing, so nothing is skipped or substituted.
// Configuration errors surface from the constructors before any sample
// is produced.
package cwgen
