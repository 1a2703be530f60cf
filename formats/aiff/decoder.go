package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audscope/audio"
)

// samples per PCMBuffer call while loading
const loadChunk = 8192

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source holds a whole AIFF stream in memory, re-encoded in the
// little-endian layout audio.Decode reads, so frames can be served by index.
type source struct {
	closer io.Closer
	format audio.WaveFormat
	data   []byte
}

func (s *source) Format() audio.WaveFormat { return s.format }
func (s *source) Frames() int              { return len(s.data) / s.format.FrameSize() }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *source) ReadFrames(start, count int) ([]byte, bool) {
	frames := s.Frames()
	if start < 0 || count <= 0 || start >= frames {
		return nil, false
	}

	fs := s.format.FrameSize()
	end := min(start+count, frames)
	return s.data[start*fs : end*fs], true
}

// newSource drains dec into memory.
func newSource(dec aiffReader, bitDepth int) (*source, error) {
	f := dec.Format()
	if f == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	format, err := audio.NewWaveFormat(f.SampleRate, f.NumChannels, bitDepth)
	if err != nil {
		return nil, err
	}

	buf := &goaudio.IntBuffer{
		Data:           make([]int, loadChunk),
		Format:         f,
		SourceBitDepth: bitDepth,
	}

	var samples []int
	for {
		n, err := dec.PCMBuffer(buf)
		samples = append(samples, buf.Data[:n]...)
		if err != nil && err != io.EOF {
			if n == 0 {
				return nil, fmt.Errorf("reading aiff data: %w", err)
			}
			break
		}
		if n == 0 || err == io.EOF {
			break
		}
	}

	// go-audio hands back 8-bit AIFF samples as the raw two's-complement
	// byte; flipping the top bit gives the offset-binary layout Decode reads.
	if bitDepth == 8 {
		for i, v := range samples {
			samples[i] = int(byte(v) ^ 0x80)
		}
	}

	whole := len(samples) - len(samples)%format.Channels
	data, err := audio.Encode(make([]byte, 0, whole*format.BytesPerSample()), samples[:whole], bitDepth)
	if err != nil {
		return nil, err
	}

	return &source{format: format, data: data}, nil
}

// Decoder opens uncompressed AIFF files.
type Decoder struct{}

func (Decoder) Open(rs io.ReadSeeker) (audio.WaveSource, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	src, err := newSource(dec, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	if c, ok := rs.(io.Closer); ok {
		src.closer = c
	}

	return src, nil
}
