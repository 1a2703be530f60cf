// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// WaveFormat describes a PCM stream. MaxAmplitude is derived from BitDepth
// once, by NewWaveFormat.
type WaveFormat struct {
	SampleRate   int
	Channels     int
	BitDepth     int
	MaxAmplitude int
}

// NewWaveFormat validates the stream parameters and derives MaxAmplitude.
func NewWaveFormat(sampleRate, channels, bitDepth int) (WaveFormat, error) {
	maxAmp, err := MaxAmplitude(bitDepth)
	if err != nil {
		return WaveFormat{}, err
	}
	if channels < 1 {
		return WaveFormat{}, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	if sampleRate < 1 {
		return WaveFormat{}, fmt.Errorf("%w: sample rate %d", ErrUnsupportedFormat, sampleRate)
	}

	return WaveFormat{
		SampleRate:   sampleRate,
		Channels:     channels,
		BitDepth:     bitDepth,
		MaxAmplitude: maxAmp,
	}, nil
}

// BytesPerSample is the width of one channel sample.
func (f WaveFormat) BytesPerSample() int { return f.BitDepth / 8 }

// FrameSize is the width of one interleaved frame.
func (f WaveFormat) FrameSize() int { return f.BytesPerSample() * f.Channels }

func (f WaveFormat) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit", f.SampleRate, f.Channels, f.BitDepth)
}
