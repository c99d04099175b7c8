// SPDX-License-Identifier: EPL-2.0

package morse

// Element is one keying step: a tone or a silence of a given length.
// Durations keep floating precision internally; sinks that need integer
// milliseconds round at the boundary.
type Element struct {
	// Tone reports whether the transmitter is keyed down.
	Tone bool
	// Millis is the element duration in milliseconds. Never negative.
	Millis float64
}

// ElementReader is a pull-based stream of keying elements in playback
// order. ReadElements fills dst and returns the number of elements
// written; it returns io.EOF once the underlying input is exhausted.
// Implementations only advance their state when pulled, so a consumer
// never holds more than one read's worth of elements in memory.
type ElementReader interface {
	ReadElements(dst []Element) (n int, err error)
}
