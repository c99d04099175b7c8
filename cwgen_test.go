// SPDX-License-Identifier: EPL-2.0

package cwgen

import (
	"encoding/binary"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rfwave/cwgen/morse"
	"github.com/rfwave/cwgen/synth"
)

var testSound = synth.Config{
	SampleRate: 8000,
	Frequency:  600,
	Amplitude:  0.5,
}

func TestGenerate_SingleDot(t *testing.T) {
	t.Parallel()

	// "e" at 12 WPM: a 100 ms dot plus a 300 ms character gap.
	pcm16, err := Generate("e", morse.Config{WPM: 12}, testSound, nil, 4096)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want := synth.SampleCount(400, testSound.SampleRate)
	if len(pcm16) != want {
		t.Fatalf("got %d samples, want %d", len(pcm16), want)
	}

	// The dot must carry signal, the gap must be silent.
	toneSamples := synth.SampleCount(100, testSound.SampleRate)
	nonZero := 0
	for _, s := range pcm16[:toneSamples] {
		if s != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("tone portion is all-zero")
	}

	for i, s := range pcm16[toneSamples:] {
		if s != 0 {
			t.Fatalf("gap sample %d = %d, want 0", i, s)
		}
	}
}

func TestGenerate_UnknownCharacter(t *testing.T) {
	t.Parallel()

	_, err := Generate("sos 🙂", morse.Config{WPM: 12}, testSound, nil, 4096)
	if !errors.Is(err, morse.ErrUnknownCharacter) {
		t.Errorf("Generate() error = %v, want ErrUnknownCharacter", err)
	}
}

func TestGenerate_RejectsBadSynthConfig(t *testing.T) {
	t.Parallel()

	bad := testSound
	bad.Frequency = 6000 // above 8000/2

	_, err := Generate("e", morse.Config{WPM: 12}, bad, nil, 4096)
	if !errors.Is(err, synth.ErrFrequencyTooHigh) {
		t.Errorf("Generate() error = %v, want ErrFrequencyTooHigh", err)
	}
}

func TestGenerate_SameSeedReproduces(t *testing.T) {
	t.Parallel()

	keying := morse.Config{WPM: 15, Jitter: 0.2, Drift: 0.05}
	sound := testSound
	sound.NoiseKind = synth.NoisePink
	sound.NoiseLevel = 0.3

	a, err := Generate("cq de paris", keying, sound, rand.New(rand.NewSource(21)), 1024)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	b, err := Generate("cq de paris", keying, sound, rand.New(rand.NewSource(21)), 1024)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestGenerate_BufferSizeIndependent(t *testing.T) {
	t.Parallel()

	// The collected signal must not depend on the pull block size.
	var first []int16
	for i, size := range []int{64, 1000, 4096} {
		pcm16, err := Generate("sos", morse.Config{WPM: 12}, testSound, nil, size)
		if err != nil {
			t.Fatalf("Generate(bufferSize=%d) error = %v", size, err)
		}

		if i == 0 {
			first = pcm16
			continue
		}
		if len(pcm16) != len(first) {
			t.Fatalf("bufferSize %d: got %d samples, want %d", size, len(pcm16), len(first))
		}
		for j := range pcm16 {
			if pcm16[j] != first[j] {
				t.Fatalf("bufferSize %d: sample %d differs", size, j)
			}
		}
	}
}

func TestEncodeWAV_EndToEnd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "msg.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	err = EncodeWAV(f, strings.NewReader("sos"), morse.Config{WPM: 12}, testSound, nil, 4096)
	if err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(data[0:4]) != "RIFF" {
		t.Fatal("output is not a RIFF file")
	}
	if rate := binary.LittleEndian.Uint32(data[24:28]); rate != 8000 {
		t.Errorf("sample rate = %d, want 8000", rate)
	}

	// "sos" at 12 WPM keys exactly 3000 ms.
	wantSamples := synth.SampleCount(3000, testSound.SampleRate)
	if got := (len(data) - 44) / 2; got != wantSamples {
		t.Errorf("payload has %d samples, want %d", got, wantSamples)
	}
}
