// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
)

// Oscillator produces a sine tone by cycling a lookup table holding
// exactly one period of the wave. Advancing one sample per call keeps
// the phase continuous for a tone of any length without precomputing it.
type Oscillator struct {
	table []float32
	pos   int
}

// NewOscillator precomputes one period (floor(sampleRate/frequency)
// samples) of a sine wave at the given amplitude. The frequency must be
// positive and at most half the sample rate; anything above the Nyquist
// limit is a configuration error, rejected before synthesis begins.
func NewOscillator(frequency, amplitude float64, sampleRate int) (*Oscillator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("rate %d: %w", sampleRate, ErrInvalidSampleRate)
	}
	if frequency <= 0 {
		return nil, fmt.Errorf("frequency %v: %w", frequency, ErrInvalidFrequency)
	}
	if 2*frequency > float64(sampleRate) {
		return nil, fmt.Errorf("frequency %v at rate %d: %w", frequency, sampleRate, ErrFrequencyTooHigh)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("amplitude %v: %w", amplitude, ErrInvalidAmplitude)
	}

	period := int(float64(sampleRate) / frequency)
	table := make([]float32, period)
	for i := range table {
		table[i] = float32(amplitude * math.Sin(2*math.Pi*frequency*float64(i)/float64(sampleRate)))
	}

	return &Oscillator{table: table}, nil
}

// Period returns the table length in samples.
func (o *Oscillator) Period() int { return len(o.table) }

// Next returns the next sample and advances the cursor, wrapping at the
// end of the period.
func (o *Oscillator) Next() float32 {
	v := o.table[o.pos]
	o.pos++
	if o.pos == len(o.table) {
		o.pos = 0
	}

	return v
}

// Reset rewinds the cursor to the start of the period. Called at the
// beginning of each tone element.
func (o *Oscillator) Reset() { o.pos = 0 }
