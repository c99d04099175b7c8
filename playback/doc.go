// SPDX-License-Identifier: EPL-2.0

// Package playback plays the synthesized CW signal through the system
// audio device.
//
// The player feeds oto (github.com/hajimehoshi/oto/v2) fixed-size blocks
// of mono 16-bit little-endian PCM. The block size is independent of the
// keying element boundaries; a block may span several elements or split
// one. Cancellation through the context is checked between blocks, never
// inside one, so the device is always handed whole frames.
//
//	player, err := playback.NewPlayer(22050, 4096)
//	if err != nil {
//	    // no audio device
//	}
//
//	if err := player.Play(ctx, src); err != nil {
//	    // stream error or cancellation
//	}
package playback
