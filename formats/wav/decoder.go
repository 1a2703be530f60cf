// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/audscope/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type wavSource struct {
	rs         io.ReadSeeker
	format     audio.WaveFormat
	dataOffset int64
	frames     int
	buf        []byte
	logger     *slog.Logger
}

func (s *wavSource) Format() audio.WaveFormat { return s.format }
func (s *wavSource) Frames() int              { return s.frames }

func (s *wavSource) Close() error {
	if c, ok := s.rs.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

func (s *wavSource) ReadFrames(start, count int) ([]byte, bool) {
	if start < 0 || count <= 0 || start >= s.frames {
		return nil, false
	}

	frameSize := s.format.FrameSize()
	n := min(count, s.frames-start) * frameSize
	if cap(s.buf) < n {
		s.buf = make([]byte, n)
	}
	buf := s.buf[:n]

	offset := s.dataOffset + int64(start)*int64(frameSize)
	if _, err := s.rs.Seek(offset, io.SeekStart); err != nil {
		s.logger.Debug("wav seek failed", "frame", start, "error", err)
		return nil, false
	}

	read, err := io.ReadFull(s.rs, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		s.logger.Debug("wav read failed", "frame", start, "error", err)
		return nil, false
	}

	// whole frames only
	read -= read % frameSize
	if read == 0 {
		return nil, false
	}

	return buf[:read], true
}

// Decoder opens RIFF/WAVE files holding integer PCM.
type Decoder struct {
	// Logger receives soft read failures at debug level. Defaults to slog.Default().
	Logger *slog.Logger
}

func (d Decoder) Open(rs io.ReadSeeker) (audio.WaveSource, error) {
	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return nil, ErrNotWavFile
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	dec := gowav.NewDecoder(rs)
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	if dec.PCMChunk == nil || dec.NumChans == 0 {
		return nil, ErrUnsupportedWavChunks
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: WAV audio format %#x", audio.ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	format, err := audio.NewWaveFormat(int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	// go-audio leaves the reader at the first PCM byte.
	dataOffset, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-audio rounds an odd chunk size up to cover the RIFF pad byte, so
	// the declared size is read from the chunk header itself.
	declared, err := chunkSize(rs, dataOffset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// A truncated file is served up to its last whole frame.
	dataSize := min(declared, end-dataOffset)

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &wavSource{
		rs:         rs,
		format:     format,
		dataOffset: dataOffset,
		frames:     int(dataSize / int64(format.FrameSize())),
		logger:     logger,
	}, nil
}

// chunkSize reads the little-endian size field just before dataOffset.
func chunkSize(rs io.ReadSeeker, dataOffset int64) (int64, error) {
	if dataOffset < 4 {
		return 0, io.ErrUnexpectedEOF
	}
	if _, err := rs.Seek(dataOffset-4, io.SeekStart); err != nil {
		return 0, err
	}

	var size [4]byte
	if _, err := io.ReadFull(rs, size[:]); err != nil {
		return 0, err
	}

	return int64(binary.LittleEndian.Uint32(size[:])), nil
}
