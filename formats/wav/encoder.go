// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/rfwave/cwgen/synth"
	"github.com/rfwave/cwgen/utils"
)

// Encoder streams mono 16-bit PCM into a WAV container. Samples are
// written in blocks; Close finalizes the RIFF header. Write failures
// are propagated, never retried, since a partially written signal
// cannot be resumed consistently.
type Encoder struct {
	enc *gowav.Encoder
	buf *goaudio.IntBuffer
}

// NewEncoder prepares a WAV encoder writing to ws at sampleRate. The
// writer must support seeking so the chunk sizes can be patched on
// Close.
func NewEncoder(ws io.WriteSeeker, sampleRate int) (*Encoder, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("rate %d: %w", sampleRate, ErrInvalidSampleRate)
	}

	return &Encoder{
		enc: gowav.NewEncoder(ws, sampleRate, 16, 1, 1),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}, nil
}

// WriteSamples appends a block of quantized samples to the container.
func (e *Encoder) WriteSamples(pcm []int16) error {
	if len(pcm) == 0 {
		return nil
	}

	if cap(e.buf.Data) < len(pcm) {
		e.buf.Data = make([]int, len(pcm))
	}
	e.buf.Data = e.buf.Data[:len(pcm)]

	for i, s := range pcm {
		e.buf.Data[i] = int(s)
	}

	if err := e.enc.Write(e.buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close finalizes the WAV header. The file is not playable before this.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// EncodeSource drains src into ws as mono 16-bit WAV at the source's
// sample rate, quantizing blockSize samples at a time. Memory use is
// bounded by one block regardless of signal length.
func EncodeSource(ws io.WriteSeeker, src synth.Source, blockSize int) error {
	if blockSize <= 0 {
		return fmt.Errorf("block size %d: %w", blockSize, ErrInvalidBlockSize)
	}

	enc, err := NewEncoder(ws, src.SampleRate())
	if err != nil {
		return err
	}

	buf := make([]float32, blockSize)
	pcm := make([]int16, blockSize)

	for {
		n, readErr := src.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				pcm[i] = utils.Float32ToInt16(buf[i])
			}
			if err := enc.WriteSamples(pcm[:n]); err != nil {
				return err
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	return enc.Close()
}
