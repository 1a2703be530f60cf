package player

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audscope/audio"
	"github.com/ik5/audscope/utils"
)

// bytesPerFrame is one stereo float32 frame.
const bytesPerFrame = 2 * 4

// pcmReader streams two channels of a source as interleaved stereo
// float32 little-endian. The lower channel index plays left; when both
// indices are equal that channel is heard on both sides.
type pcmReader struct {
	src    audio.WaveSource
	format audio.WaveFormat
	left   int
	right  int
	pos    int
	pairs  []audio.Pair
}

func newPCMReader(src audio.WaveSource, xCh, yCh int) (*pcmReader, error) {
	format := src.Format()
	if xCh < 0 || xCh >= format.Channels || yCh < 0 || yCh >= format.Channels {
		return nil, fmt.Errorf("%w: x=%d y=%d with %d channels",
			audio.ErrChannelOutOfRange, xCh, yCh, format.Channels)
	}

	return &pcmReader{
		src:    src,
		format: format,
		left:   min(xCh, yCh),
		right:  max(xCh, yCh),
	}, nil
}

func (r *pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}

	raw, ok := r.src.ReadFrames(r.pos, frames)
	if !ok {
		return 0, io.EOF
	}

	pairs, err := audio.Extract(r.pairs, raw, r.format, r.left, r.right)
	if err != nil {
		return 0, fmt.Errorf("extracting playback frames: %w", err)
	}
	r.pairs = pairs

	maxAmp := r.format.MaxAmplitude
	for i, pair := range pairs {
		off := i * bytesPerFrame
		binary.LittleEndian.PutUint32(p[off:], math.Float32bits(utils.IntToFloat32(pair.X, maxAmp)))
		binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(utils.IntToFloat32(pair.Y, maxAmp)))
	}
	r.pos += len(pairs)

	return len(pairs) * bytesPerFrame, nil
}
