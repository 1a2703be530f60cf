// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/audscope/audio"
)

// MockSource is a test helper that serves generated PCM frames.
// It implements audio.WaveSource.
type MockSource struct {
	format audio.WaveFormat
	data   []byte
	reads  int
	closed bool
}

// NewMockSource creates a new mock wave source of totalFrames frames.
// waveform returns the signed sample for a frame index and channel; for
// 8-bit sources it is biased to unsigned before being stored.
func NewMockSource(sampleRate, channels, bitDepth, totalFrames int, waveform func(frame int, channel int) int) *MockSource {
	format, err := audio.NewWaveFormat(sampleRate, channels, bitDepth)
	if err != nil {
		panic(err)
	}

	samples := make([]int, 0, totalFrames*channels)
	for frame := range totalFrames {
		for ch := range channels {
			v := waveform(frame, ch)
			if bitDepth == 8 {
				v += audio.Bias8
			}
			samples = append(samples, v)
		}
	}

	data, err := audio.Encode(make([]byte, 0, totalFrames*format.FrameSize()), samples, bitDepth)
	if err != nil {
		panic(err)
	}

	return &MockSource{format: format, data: data}
}

// NewSilentSource creates a mock source of all-zero frames.
func NewSilentSource(sampleRate, channels, bitDepth, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, bitDepth, totalFrames, func(frame int, channel int) int {
		return 0
	})
}

// NewSineSource creates a mock source with a sine on channel 0 and a cosine
// on every other channel, at half of full scale.
func NewSineSource(sampleRate, channels, bitDepth, totalFrames int, frequency float64) *MockSource {
	maxAmp, err := audio.MaxAmplitude(bitDepth)
	if err != nil {
		panic(err)
	}
	return NewMockSource(sampleRate, channels, bitDepth, totalFrames, func(frame int, channel int) int {
		phase := 2 * math.Pi * frequency * float64(frame) / float64(sampleRate)
		if channel > 0 {
			phase += math.Pi / 2
		}
		return int(math.Sin(phase) * float64(maxAmp) / 2)
	})
}

func (m *MockSource) Format() audio.WaveFormat { return m.format }
func (m *MockSource) Frames() int              { return len(m.data) / m.format.FrameSize() }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reads counts ReadFrames calls, including the ones past the end.
func (m *MockSource) Reads() int { return m.reads }

// Closed reports whether Close was called.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) ReadFrames(start, count int) ([]byte, bool) {
	m.reads++

	frames := m.Frames()
	if start < 0 || count <= 0 || start >= frames {
		return nil, false
	}

	end := min(start+count, frames)
	fs := m.format.FrameSize()
	return m.data[start*fs : end*fs], true
}
