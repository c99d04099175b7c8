// SPDX-License-Identifier: EPL-2.0

// Package morse converts text into a timed sequence of CW keying elements.
//
// This package implements the timing half of the CW pipeline: it maps
// characters to International Morse Code patterns and produces an ordered
// stream of (tone on/off, duration) elements with optional human-like
// imperfections.
//
// # Timing Model
//
// Timing follows the PARIS standard. At a speed of w words per minute the
// dot length is floor(1200/w) milliseconds, a dash is three dots, the gap
// between symbols within a character is one dot, the gap after a character
// is one dash, and a word gap is four dots.
//
// # Keying Imperfections
//
// Two independent stochastic effects model a human operator:
//
//   - Jitter: every individual dot and dash length is redrawn from a
//     normal distribution around its nominal length.
//   - Drift: after each character the operating speed is multiplied by a
//     factor drawn around 1.0, producing a slow random walk in speed
//     over the course of a message, optionally clamped to a speed range.
//
// Both take their randomness from an explicitly injected *rand.Rand, so a
// fixed seed reproduces a message exactly. With jitter and drift set to
// zero the output is fully deterministic and no random source is consulted.
//
// # Streaming
//
// The Keyer reads runes from an io.RuneReader and hands out elements
// through the pull-based ElementReader interface:
//
//	key, err := morse.NewKeyer(strings.NewReader("sos"), morse.Config{WPM: 12}, nil)
//	if err != nil {
//	    // handle error
//	}
//
//	buf := make([]morse.Element, 64)
//	for {
//	    n, err := key.ReadElements(buf)
//	    // play buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Memory use is bounded by a single character's worth of elements, so
// arbitrarily long input can be keyed without buffering the whole text.
//
// # Character Handling
//
// Characters are normalized before lookup: any whitespace becomes a word
// gap and everything else is lowercased. With Config.Fold enabled an
// additional pre-pass strips combining marks, so that e.g. 'á' keys as
// 'a'. A character with no Morse pattern stops the stream with
// ErrUnknownCharacter; partial Morse output would desynchronize all
// following spacing, so there is no skip-and-continue mode.
package morse
