// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Pair is one frame reduced to the two displayed channels.
type Pair struct {
	X, Y int
}

// Extract appends to dst[:0] one Pair per complete frame of raw, taking
// channel xCh as X and yCh as Y. A trailing partial frame is dropped.
// 8-bit samples are bias corrected into [-128,127].
func Extract(dst []Pair, raw []byte, f WaveFormat, xCh, yCh int) ([]Pair, error) {
	dst = dst[:0]

	if _, err := MaxAmplitude(f.BitDepth); err != nil {
		return dst, err
	}
	if xCh < 0 || xCh >= f.Channels || yCh < 0 || yCh >= f.Channels {
		return dst, fmt.Errorf("%w: x=%d y=%d with %d channels", ErrChannelOutOfRange, xCh, yCh, f.Channels)
	}

	frameSize := f.FrameSize()
	frames := len(raw) / frameSize
	channels := make([]int, f.Channels)

	for i := range frames {
		decodeInto(channels, raw[i*frameSize:(i+1)*frameSize], f.BitDepth)
		x, y := channels[xCh], channels[yCh]
		if f.BitDepth == 8 {
			x -= Bias8
			y -= Bias8
		}
		dst = append(dst, Pair{X: x, Y: y})
	}

	return dst, nil
}
