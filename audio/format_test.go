// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestNewWaveFormat(t *testing.T) {
	t.Parallel()

	f, err := NewWaveFormat(48000, 2, 24)
	if err != nil {
		t.Fatalf("NewWaveFormat() error = %v", err)
	}

	if f.MaxAmplitude != 8388607 {
		t.Errorf("MaxAmplitude = %d, want 8388607", f.MaxAmplitude)
	}
	if f.BytesPerSample() != 3 {
		t.Errorf("BytesPerSample() = %d, want 3", f.BytesPerSample())
	}
	if f.FrameSize() != 6 {
		t.Errorf("FrameSize() = %d, want 6", f.FrameSize())
	}
	if got := f.String(); got != "48000 Hz, 2 ch, 24-bit" {
		t.Errorf("String() = %q", got)
	}
}

func TestNewWaveFormat_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rate     int
		channels int
		bitDepth int
	}{
		{"bit depth", 44100, 2, 20},
		{"no channels", 44100, 0, 16},
		{"no rate", 0, 2, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewWaveFormat(tt.rate, tt.channels, tt.bitDepth)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("NewWaveFormat() error = %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}
