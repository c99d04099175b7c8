// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  32767,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  -32767,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16383, // truncated from 16383.5
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16383,
		},
		{
			name:  "small positive",
			input: 0.001,
			want:  32, // truncated from 32.767
		},
		{
			name:  "small negative",
			input: -0.001,
			want:  -32,
		},
		{
			name:  "clamp over max",
			input: 1.5,
			want:  32767,
		},
		{
			name:  "clamp under min",
			input: -1.5,
			want:  -32767,
		},
		{
			name:  "clamp way over max",
			input: 100.0,
			want:  32767,
		},
		{
			name:  "clamp way under min",
			input: -100.0,
			want:  -32767,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestFloat32ToInt16_Monotonic checks that quantization never inverts
// sample ordering across the full range.
func TestFloat32ToInt16_Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for i := -999; i <= 1000; i++ {
		x := float32(i) / 1000
		got := Float32ToInt16(x)
		if got < prev {
			t.Fatalf("Float32ToInt16(%v) = %v < previous %v", x, got, prev)
		}
		prev = got
	}
}
