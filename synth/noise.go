// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// NoiseKind selects the spectral color of the background noise.
type NoiseKind string

const (
	NoiseWhite  NoiseKind = "white"
	NoisePink   NoiseKind = "pink"
	NoiseBlue   NoiseKind = "blue"
	NoiseBrown  NoiseKind = "brown"
	NoiseViolet NoiseKind = "violet"
)

// ParseNoiseKind validates a noise kind name.
func ParseNoiseKind(name string) (NoiseKind, error) {
	switch kind := NoiseKind(name); kind {
	case NoiseWhite, NoisePink, NoiseBlue, NoiseBrown, NoiseViolet:
		return kind, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownNoiseKind)
	}
}

// Noise cycles a finite block of colored noise as an infinite sample
// sequence. One second of noise is generated up front, normalized to
// unit standard deviation and scaled by amplitude/5; the divisor leaves
// headroom so that noise at full level does not drown the tone.
type Noise struct {
	block []float32
	pos   int
}

// NewNoise generates the noise block for the given kind. The amplitude
// must be within [0, 1]. Passing the same seeded rng reproduces the
// block exactly; a nil rng is seeded from the wall clock.
func NewNoise(kind NoiseKind, sampleRate int, amplitude float64, rng *rand.Rand) (*Noise, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("rate %d: %w", sampleRate, ErrInvalidSampleRate)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("noise amplitude %v: %w", amplitude, ErrInvalidAmplitude)
	}

	var raw []float64
	switch kind {
	case NoiseWhite:
		raw = whiteNoise(sampleRate, rng)
	case NoisePink:
		raw = pinkNoise(sampleRate, rng)
	case NoiseBlue:
		raw = differentiate(pinkNoise(sampleRate, rng))
	case NoiseBrown:
		raw = integrate(whiteNoise(sampleRate, rng))
	case NoiseViolet:
		raw = differentiate(whiteNoise(sampleRate, rng))
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownNoiseKind)
	}

	normalize(raw)

	scale := amplitude / 5
	block := make([]float32, len(raw))
	for i, v := range raw {
		block[i] = float32(v * scale)
	}

	return &Noise{block: block}, nil
}

// Next returns the next noise sample, cycling the block.
func (n *Noise) Next() float32 {
	v := n.block[n.pos]
	n.pos++
	if n.pos == len(n.block) {
		n.pos = 0
	}

	return v
}

// whiteNoise draws independent gaussian samples.
func whiteNoise(length int, rng *rand.Rand) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	return out
}

// pinkNoise implements the stochastic Voss-McCartney algorithm: a bank
// of white sources updated with geometrically decreasing probability,
// whose running sum approximates a 1/f spectrum.
func pinkNoise(length int, rng *rand.Rand) []float64 {
	const sources = 12

	values := make([]float64, sources)
	probs := make([]float64, sources)

	total := 0.0
	for i := range probs {
		probs[i] = math.Pow(2, float64(-i))
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}

	sum := 0.0
	for i := range values {
		values[i] = rng.Float64()*2 - 1
		sum += values[i]
	}

	out := make([]float64, length)
	for i := range out {
		// Pick one source to update; low-indexed sources change often
		// (high frequencies), high-indexed ones rarely (low frequencies).
		r := rng.Float64()
		cumulative := 0.0
		pick := sources - 1
		for j, p := range probs {
			cumulative += p
			if r < cumulative {
				pick = j
				break
			}
		}

		next := rng.Float64()*2 - 1
		sum += next - values[pick]
		values[pick] = next

		out[i] = sum
	}

	return out
}

// integrate applies a leaky integrator, turning white noise into brown
// (-6 dB/octave). The leak keeps the random walk from wandering off.
func integrate(in []float64) []float64 {
	const leak = 0.995

	out := make([]float64, len(in))
	acc := 0.0
	for i, v := range in {
		acc = leak*acc + v
		out[i] = acc
	}

	return out
}

// differentiate applies a first difference, raising the spectrum by
// +6 dB/octave (pink -> blue, white -> violet).
func differentiate(in []float64) []float64 {
	out := make([]float64, len(in))
	prev := 0.0
	for i, v := range in {
		out[i] = v - prev
		prev = v
	}

	return out
}

// normalize scales the block to unit standard deviation in place.
func normalize(block []float64) {
	if len(block) == 0 {
		return
	}

	sumSquares := 0.0
	for _, v := range block {
		sumSquares += v * v
	}

	std := math.Sqrt(sumSquares / float64(len(block)))
	if std == 0 {
		return
	}

	for i := range block {
		block[i] /= std
	}
}
