// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// WaveSource is a seekable stream of uncompressed PCM frames.
type WaveSource interface {
	// Format reports the stream parameters. It never changes after Open.
	Format() WaveFormat
	// Frames is the total number of frames in the stream.
	Frames() int
	// ReadFrames returns up to count frames starting at frame index start,
	// in little-endian layout (8-bit samples are unsigned).
	// The returned bytes are always a whole number of frames and are only
	// valid until the next call.
	// ok is false when start is at or past the end of the stream, or when
	// the underlying seek or read fails: both mean "no more data".
	ReadFrames(start, count int) (data []byte, ok bool)

	// Close releases any resources.
	Close() error
}

// Opener constructs a WaveSource from a seekable input.
type Opener interface {
	Open(rs io.ReadSeeker) (WaveSource, error)
}

// Registry for openers by format key (e.g., "wav", "aiff").
type Registry struct {
	openers map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		openers: make(map[string]Opener),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.openers[format] = o
}

func (r *Registry) Get(format string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.openers[format]
	return o, ok
}
