// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// mockSource is an in-memory WaveSource for registry tests.
type mockSource struct {
	format WaveFormat
	data   []byte
}

func newSilentSource(sampleRate, channels, frames int) *mockSource {
	f, err := NewWaveFormat(sampleRate, channels, 16)
	if err != nil {
		panic(err)
	}
	return &mockSource{format: f, data: make([]byte, frames*f.FrameSize())}
}

func (m *mockSource) Format() WaveFormat { return m.format }
func (m *mockSource) Frames() int        { return len(m.data) / m.format.FrameSize() }
func (m *mockSource) Close() error       { return nil }

func (m *mockSource) ReadFrames(start, count int) ([]byte, bool) {
	if start < 0 || start >= m.Frames() {
		return nil, false
	}
	end := min(start+count, m.Frames())
	fs := m.format.FrameSize()
	return m.data[start*fs : end*fs], true
}

// mockOpener is a test opener implementation
type mockOpener struct {
	name string
}

func (o *mockOpener) Open(rs io.ReadSeeker) (WaveSource, error) {
	return newSilentSource(44100, 2, 100), nil
}
