// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"slices"
	"testing"
)

func TestMaxAmplitude_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		want     int
	}{
		{8, 127},
		{16, 32767},
		{24, 8388607},
		{32, 2147483647},
	}

	for _, tt := range tests {
		got, err := MaxAmplitude(tt.bitDepth)
		if err != nil {
			t.Fatalf("MaxAmplitude(%d) error = %v", tt.bitDepth, err)
		}
		if got != tt.want {
			t.Errorf("MaxAmplitude(%d) = %d, want %d", tt.bitDepth, got, tt.want)
		}
	}
}

func TestMaxAmplitude_Unsupported(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{0, 4, 12, 20, 48, 64} {
		if _, err := MaxAmplitude(depth); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("MaxAmplitude(%d) error = %v, want ErrUnsupportedFormat", depth, err)
		}
	}
}

func TestDecode_8bitUnsigned(t *testing.T) {
	t.Parallel()

	got, err := Decode([]byte{0x00, 0x80, 0xFF, 0x7F}, 8)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []int{0, 128, 255, 127}
	if !slices.Equal(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestDecode_16bit(t *testing.T) {
	t.Parallel()

	raw := []byte{
		0x00, 0x00,
		0xFF, 0x7F,
		0x00, 0x80,
		0xFF, 0xFF,
		0x64, 0x00,
	}
	got, err := Decode(raw, 16)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []int{0, 32767, -32768, -1, 100}
	if !slices.Equal(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestDecode_24bitSignExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []byte
		want int
	}{
		{"zero", []byte{0x00, 0x00, 0x00}, 0},
		{"one", []byte{0x01, 0x00, 0x00}, 1},
		{"max", []byte{0xFF, 0xFF, 0x7F}, 8388607},
		{"msb 0x7F", []byte{0x00, 0x00, 0x7F}, 0x7F0000},
		{"min", []byte{0x00, 0x00, 0x80}, -8388608},
		{"minus one", []byte{0xFF, 0xFF, 0xFF}, -1},
		{"msb 0x80 low bits", []byte{0x34, 0x12, 0x80}, -8388608 + 0x1234},
		{"msb 0xFE", []byte{0x00, 0x00, 0xFE}, -0x20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.raw, 24)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("Decode() returned %d samples, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("Decode(%x) = %d, want %d", tt.raw, got[0], tt.want)
			}
			if tt.raw[2] >= 0x80 && got[0] >= 0 {
				t.Errorf("Decode(%x) = %d, want negative", tt.raw, got[0])
			}
			if tt.raw[2] < 0x80 && got[0] < 0 {
				t.Errorf("Decode(%x) = %d, want non-negative", tt.raw, got[0])
			}
		})
	}
}

func TestDecode_32bit(t *testing.T) {
	t.Parallel()

	raw := []byte{
		0xFF, 0xFF, 0xFF, 0x7F,
		0x00, 0x00, 0x00, 0x80,
		0xFE, 0xFF, 0xFF, 0xFF,
	}
	got, err := Decode(raw, 32)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []int{2147483647, -2147483648, -2}
	if !slices.Equal(got, want) {
		t.Errorf("Decode() = %v, want %v", got, want)
	}
}

func TestDecode_TrailingPartialSample(t *testing.T) {
	t.Parallel()

	got, err := Decode([]byte{0x01, 0x00, 0x02}, 16)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !slices.Equal(got, []int{1}) {
		t.Errorf("Decode() = %v, want [1]", got)
	}
}

func TestDecode_Unsupported(t *testing.T) {
	t.Parallel()

	if _, err := Decode([]byte{0, 0}, 12); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncode_RoundTripsDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		samples  []int
	}{
		{8, []int{0, 1, 128, 255}},
		{16, []int{-32768, -1, 0, 32767}},
		{24, []int{-8388608, -1, 0, 8388607}},
		{32, []int{-2147483648, -1, 0, 2147483647}},
	}

	for _, tt := range tests {
		raw, err := Encode(nil, tt.samples, tt.bitDepth)
		if err != nil {
			t.Fatalf("Encode(%d-bit) error = %v", tt.bitDepth, err)
		}
		if len(raw) != len(tt.samples)*tt.bitDepth/8 {
			t.Errorf("Encode(%d-bit) wrote %d bytes", tt.bitDepth, len(raw))
		}
		got, err := Decode(raw, tt.bitDepth)
		if err != nil {
			t.Fatalf("Decode(%d-bit) error = %v", tt.bitDepth, err)
		}
		if !slices.Equal(got, tt.samples) {
			t.Errorf("%d-bit: Decode(Encode(%v)) = %v", tt.bitDepth, tt.samples, got)
		}
	}
}

func BenchmarkDecode_24bit(b *testing.B) {
	raw := make([]byte, 3*4096)
	for i := range raw {
		raw[i] = byte(i * 7)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Decode(raw, 24)
	}
}
