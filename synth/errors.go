// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidFrequency  = errors.New("tone frequency must be positive")
	ErrFrequencyTooHigh  = errors.New("tone frequency above Nyquist limit")
	ErrInvalidAmplitude  = errors.New("amplitude must be between 0 and 1")
	ErrUnknownNoiseKind  = errors.New("unknown noise kind")
)
