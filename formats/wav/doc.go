// SPDX-License-Identifier: EPL-2.0

// Package wav writes the synthesized CW signal to a WAV container.
//
// Output is always mono 16-bit PCM at the synthesis sample rate. The
// encoder wraps github.com/go-audio/wav, which patches the RIFF chunk
// sizes on Close, so samples can be streamed block by block without ever
// holding the whole signal in memory.
//
// # Streaming a Source
//
// EncodeSource drains a synth.Source straight into a file:
//
//	out, _ := os.Create("message.wav")
//	defer out.Close()
//
//	if err := wav.EncodeSource(out, src, 4096); err != nil {
//	    // handle error
//	}
//
// # Manual Writes
//
// For more control, feed quantized blocks yourself:
//
//	enc, _ := wav.NewEncoder(out, 22050)
//	for each block {
//	    enc.WriteSamples(pcm16)
//	}
//	enc.Close() // finalizes the header
//
// Close must be called; without it the container declares zero-length
// chunks and most players refuse the file.
package wav
