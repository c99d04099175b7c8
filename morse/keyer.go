// SPDX-License-Identifier: EPL-2.0

package morse

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"
)

// Config holds the immutable keying parameters of a Keyer.
type Config struct {
	// WPM is the initial speed in words per minute (PARIS standard).
	WPM float64
	// MinWPM and MaxWPM clamp the drifting speed. Zero disables a bound.
	MinWPM float64
	MaxWPM float64
	// Jitter is the standard deviation of each symbol length, relative
	// to the dot length. Zero keys perfectly even symbols.
	Jitter float64
	// Drift is the standard deviation of the per-character multiplicative
	// speed change. Zero keeps the speed constant.
	Drift float64
	// Fold transliterates special characters (á -> a) before lookup.
	Fold bool
}

func (c Config) validate() error {
	if c.WPM <= 0 {
		return fmt.Errorf("wpm %v: %w", c.WPM, ErrInvalidSpeed)
	}
	if c.MinWPM < 0 || c.MaxWPM < 0 {
		return fmt.Errorf("bounds [%v, %v]: %w", c.MinWPM, c.MaxWPM, ErrInvalidSpeed)
	}
	if c.MinWPM > 0 && c.MaxWPM > 0 && c.MinWPM > c.MaxWPM {
		return fmt.Errorf("bounds [%v, %v]: %w", c.MinWPM, c.MaxWPM, ErrInvalidSpeedBounds)
	}
	if c.Jitter < 0 {
		return fmt.Errorf("jitter %v: %w", c.Jitter, ErrInvalidJitter)
	}
	if c.Drift < 0 {
		return fmt.Errorf("drift %v: %w", c.Drift, ErrInvalidDrift)
	}

	return nil
}

// Keyer streams keying elements for the text read from an io.RuneReader.
// It implements ElementReader. The current speed is private to one Keyer
// and mutates only between characters.
type Keyer struct {
	r   io.RuneReader
	cfg Config
	rng *rand.Rand

	wpm     float64
	pending []Element
	eof     bool
	err     error
}

// NewKeyer validates cfg and returns a Keyer reading from r. The random
// source drives jitter and drift; passing the same seeded rng reproduces
// a message exactly. A nil rng is seeded from the wall clock.
func NewKeyer(r io.RuneReader, cfg Config, rng *rand.Rand) (*Keyer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Keyer{
		r:   r,
		cfg: cfg,
		rng: rng,
		wpm: cfg.WPM,
		// A character yields at most 2*len(pattern)+1 elements;
		// the longest pattern in the alphabet has six symbols.
		pending: make([]Element, 0, 16),
	}, nil
}

// Speed returns the current operating speed in words per minute.
func (k *Keyer) Speed() float64 { return k.wpm }

// ReadElements fills dst with the next elements in playback order.
// It returns io.EOF once the input text is exhausted. Any other error is
// fatal and the stream produces no further elements.
func (k *Keyer) ReadElements(dst []Element) (int, error) {
	if k.err != nil {
		return 0, k.err
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(dst) {
		if len(k.pending) == 0 {
			if k.eof {
				break
			}
			if err := k.nextChar(); err != nil {
				if err == io.EOF {
					k.eof = true
					continue
				}
				k.err = err
				return n, err
			}
		}

		m := copy(dst[n:], k.pending)
		k.pending = k.pending[m:]
		n += m
	}

	if n < len(dst) || k.eof && len(k.pending) == 0 {
		return n, io.EOF
	}

	return n, nil
}

// nextChar reads one input character and queues its elements. The speed
// drifts once per character, after its elements are produced.
func (k *Keyer) nextChar() error {
	ch, _, err := k.r.ReadRune()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if k.cfg.Fold {
		ch = Fold(ch)
	}

	pattern, err := Lookup(NormalizeRune(ch))
	if err != nil {
		return err
	}

	buf := k.pending[:0]
	for i, sym := range pattern {
		switch sym {
		case Dot:
			buf = append(buf, Element{Tone: true, Millis: k.dotLen()})
		case Dash:
			buf = append(buf, Element{Tone: true, Millis: k.dashLen()})
		case WordGap:
			buf = append(buf, Element{Millis: 4 * k.dotLen()})
		}
		if i < len(pattern)-1 {
			buf = append(buf, Element{Millis: k.dotLen()})
		}
	}
	// The gap between characters is one dash length.
	k.pending = append(buf, Element{Millis: k.dashLen()})

	k.drift()

	return nil
}

// dotLen computes one freshly jittered dot length in milliseconds. The
// draw is clamped symmetrically around the nominal length; zero is an
// absolute floor regardless of the configured deviation.
func (k *Keyer) dotLen() float64 {
	nominal := math.Floor(1200 / k.wpm)
	if k.cfg.Jitter == 0 {
		return nominal
	}

	dev := nominal * k.cfg.Jitter
	length := k.rng.NormFloat64()*dev + nominal
	length = math.Min(math.Max(length, nominal-dev), nominal+dev)

	return math.Max(0, length)
}

func (k *Keyer) dashLen() float64 {
	return 3 * k.dotLen()
}

// drift resamples the operating speed: a multiplicative factor drawn
// around 1.0, clamped to [1-Drift, 1+Drift], then the result clamped
// into the configured speed bounds.
func (k *Keyer) drift() {
	if k.cfg.Drift == 0 {
		return
	}

	factor := k.rng.NormFloat64()*k.cfg.Drift + 1
	factor = math.Min(math.Max(factor, 1-k.cfg.Drift), 1+k.cfg.Drift)

	k.wpm *= factor
	if k.cfg.MinWPM > 0 {
		k.wpm = math.Max(k.wpm, k.cfg.MinWPM)
	}
	if k.cfg.MaxWPM > 0 {
		k.wpm = math.Min(k.wpm, k.cfg.MaxWPM)
	}
}
