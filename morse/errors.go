// SPDX-License-Identifier: EPL-2.0

package morse

import "errors"

var (
	ErrUnknownCharacter   = errors.New("no Morse pattern for character")
	ErrInvalidSpeed       = errors.New("speed must be positive")
	ErrInvalidSpeedBounds = errors.New("min speed must not exceed max speed")
	ErrInvalidJitter      = errors.New("jitter ratio must not be negative")
	ErrInvalidDrift       = errors.New("drift deviation must not be negative")
)
