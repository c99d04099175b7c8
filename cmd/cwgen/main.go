// SPDX-License-Identifier: EPL-2.0

// Command cwgen generates CW (Morse code) audio from text. It can write
// the rendered signal to a WAV file, log the raw keying elements as CSV,
// and play the signal through the system audio device.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rfwave/cwgen"
	"github.com/rfwave/cwgen/formats/csvlog"
	"github.com/rfwave/cwgen/morse"
	"github.com/rfwave/cwgen/playback"
	"github.com/rfwave/cwgen/synth"
)

// The tone is keyed at half of full scale, leaving headroom for noise.
const toneAmplitude = 0.5

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := &cli.Command{
		Name:  "cwgen",
		Usage: "Generate CW (morse code) audio from text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Read text from this file ('-' for stdin)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "wave",
				Aliases: []string{"w"},
				Usage:   "Write WAVE output to this file",
			},
			&cli.StringFlag{
				Name:  "csv",
				Usage: "Write the timed keying elements to this CSV file",
			},
			&cli.BoolFlag{
				Name:    "play",
				Aliases: []string{"p"},
				Usage:   "Play the signal through the audio device",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Be more quiet",
			},
			&cli.IntFlag{
				Name:  "frame-rate",
				Value: 22050,
				Usage: "Frame rate in Hz",
			},
			&cli.IntFlag{
				Name:    "frequency",
				Aliases: []string{"f"},
				Value:   600,
				Usage:   "Tone frequency in Hz",
			},
			&cli.FloatFlag{
				Name:    "wpm",
				Aliases: []string{"s"},
				Value:   12,
				Usage:   "Initial speed in WPM",
			},
			&cli.FloatFlag{
				Name:  "min-wpm",
				Usage: "Minimum speed in WPM when drifting (default: none)",
			},
			&cli.FloatFlag{
				Name:  "max-wpm",
				Usage: "Maximum speed in WPM when drifting (default: none)",
			},
			&cli.FloatFlag{
				Name:    "length-standard-deviation",
				Aliases: []string{"d"},
				Usage:   "Standard deviation of each symbol length, relative to the dot length (sensible: < 0.2)",
			},
			&cli.FloatFlag{
				Name:    "length-drift",
				Aliases: []string{"D"},
				Usage:   "Speed drift per character (suggested: 0.02)",
			},
			&cli.StringFlag{
				Name:    "noise-kind",
				Aliases: []string{"N"},
				Value:   "pink",
				Usage:   "Noise kind (white, pink, blue, brown, violet)",
			},
			&cli.FloatFlag{
				Name:    "noise-level",
				Aliases: []string{"n"},
				Usage:   "Add noise with this amplitude (0 <= a <= 1)",
			},
			&cli.BoolFlag{
				Name:    "normalise-special-characters",
				Aliases: []string{"c"},
				Usage:   "Normalise special characters, like á to a",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "Random seed for jitter, drift and noise (default: clock)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cwgen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	keying := morse.Config{
		WPM:    float64(cmd.Float("wpm")),
		MinWPM: float64(cmd.Float("min-wpm")),
		MaxWPM: float64(cmd.Float("max-wpm")),
		Jitter: float64(cmd.Float("length-standard-deviation")),
		Drift:  float64(cmd.Float("length-drift")),
		Fold:   cmd.Bool("normalise-special-characters"),
	}

	sound := synth.Config{
		SampleRate: int(cmd.Int("frame-rate")),
		Frequency:  float64(cmd.Int("frequency")),
		Amplitude:  toneAmplitude,
		NoiseLevel: float64(cmd.Float("noise-level")),
	}
	if sound.NoiseLevel > 0 {
		kind, err := synth.ParseNoiseKind(cmd.String("noise-kind"))
		if err != nil {
			return err
		}
		sound.NoiseKind = kind
	}

	text, err := readInput(cmd.String("input"))
	if err != nil {
		return err
	}

	// One seed for the whole run: every sink keys the identical
	// message, jitter and drift included.
	seed := int64(cmd.Int("seed"))
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	quiet := cmd.Bool("quiet")
	ranSink := false

	if path := cmd.String("csv"); path != "" {
		if err := writeCSV(path, text, keying, seed); err != nil {
			return err
		}
		ranSink = true
		if !quiet {
			fmt.Println("Wrote:", path)
		}
	}

	if path := cmd.String("wave"); path != "" {
		if err := writeWave(path, text, keying, sound, seed); err != nil {
			return err
		}
		ranSink = true
		if !quiet {
			fmt.Println("Wrote:", path)
		}
	}

	if cmd.Bool("play") {
		if err := play(ctx, text, keying, sound, seed); err != nil {
			return err
		}
		ranSink = true
	}

	if !ranSink && !quiet {
		fmt.Println("Nothing to do: pass --wave, --csv or --play")
	}

	return nil
}

// readInput loads the message text. Text is small next to the audio it
// produces; the synthesis path itself stays streaming.
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}

	return string(data), nil
}

func writeCSV(path, text string, keying morse.Config, seed int64) error {
	key, err := morse.NewKeyer(strings.NewReader(text), keying, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	if err := csvlog.WriteAll(f, key); err != nil {
		return err
	}

	return f.Close()
}

func writeWave(path, text string, keying morse.Config, sound synth.Config, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	err = cwgen.EncodeWAV(f, strings.NewReader(text), keying, sound, rand.New(rand.NewSource(seed)), 4096)
	if err != nil {
		return err
	}

	return f.Close()
}

func play(ctx context.Context, text string, keying morse.Config, sound synth.Config, seed int64) error {
	src, err := cwgen.NewSource(strings.NewReader(text), keying, sound, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	player, err := playback.NewPlayer(sound.SampleRate, sound.SampleRate/4)
	if err != nil {
		return err
	}

	return player.Play(ctx, src)
}
