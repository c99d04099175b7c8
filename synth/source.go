// SPDX-License-Identifier: EPL-2.0

package synth

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (always 1 for CW synthesis).
	Channels() int
	// ReadSamples fills dst with float32 samples in [-1,1]. Returns the
	// number of values written. When n == 0 with err == io.EOF, the
	// stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}
