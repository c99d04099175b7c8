// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/rfwave/cwgen/synth"
	"github.com/rfwave/cwgen/utils"
)

var ErrInvalidBlockSize = errors.New("block size must be positive")

// Player owns an audio device context for mono 16-bit playback at a
// fixed sample rate.
type Player struct {
	ctx       *oto.Context
	ready     chan struct{}
	blockSize int
}

// NewPlayer opens the audio device for playback at sampleRate. The
// blockSize is the number of samples quantized and handed to the device
// per pull.
func NewPlayer(sampleRate, blockSize int) (*Player, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size %d: %w", blockSize, ErrInvalidBlockSize)
	}

	otoCtx, ready, err := oto.NewContext(sampleRate, 1, 2)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &Player{ctx: otoCtx, ready: ready, blockSize: blockSize}, nil
}

// Play drains src through the audio device and blocks until the signal
// has finished, the stream fails, or ctx is canceled. Cancellation takes
// effect at the next block boundary.
func (p *Player) Play(ctx context.Context, src synth.Source) error {
	select {
	case <-p.ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	r := &sourceReader{
		ctx: ctx,
		src: src,
		buf: make([]float32, p.blockSize),
	}

	player := p.ctx.NewPlayer(r)
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if r.failure != nil {
		return r.failure
	}

	return ctx.Err()
}

// sourceReader adapts a Source to the byte stream oto pulls from:
// little-endian int16, whole frames only. A stream error or context
// cancellation ends the byte stream cleanly; the cause is kept aside for
// Play to report.
type sourceReader struct {
	ctx context.Context
	src synth.Source
	buf []float32

	failure error
	done    bool
}

func (r *sourceReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	if err := r.ctx.Err(); err != nil {
		r.failure = err
		r.done = true
		return 0, io.EOF
	}
	if len(p) < 2 {
		return 0, nil
	}

	frames := min(len(p)/2, len(r.buf))
	n, err := r.src.ReadSamples(r.buf[:frames])

	for i := 0; i < n; i++ {
		s := utils.Float32ToInt16(r.buf[i])
		binary.LittleEndian.PutUint16(p[2*i:2*i+2], uint16(s))
	}

	if err == io.EOF {
		r.done = true
		if n == 0 {
			return 0, io.EOF
		}
	} else if err != nil {
		r.failure = err
		r.done = true
		if n == 0 {
			return 0, io.EOF
		}
	}

	return 2 * n, nil
}
