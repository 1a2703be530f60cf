// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// Bias8 centres an unsigned 8-bit sample around zero.
const Bias8 = 128

// MaxAmplitude returns the largest positive sample value for bitDepth.
// 8-bit samples are treated as signed after bias correction.
func MaxAmplitude(bitDepth int) (int, error) {
	m := goaudio.IntMaxSignedValue(bitDepth)
	if m == 0 {
		return 0, fmt.Errorf("%w: %d-bit", ErrUnsupportedFormat, bitDepth)
	}
	return m, nil
}

// Decode converts raw little-endian PCM into one integer per sample.
//
// 8-bit samples are returned unsigned, in [0,255]; subtract Bias8 before
// use. 24-bit samples are sign-extended from the top bit of their third
// byte. A trailing partial sample is ignored.
func Decode(raw []byte, bitDepth int) ([]int, error) {
	if _, err := MaxAmplitude(bitDepth); err != nil {
		return nil, err
	}

	width := bitDepth / 8
	out := make([]int, len(raw)/width)
	decodeInto(out, raw, bitDepth)

	return out, nil
}

// decodeInto fills dst with len(dst) samples from raw. bitDepth must
// already be validated.
func decodeInto(dst []int, raw []byte, bitDepth int) {
	switch bitDepth {
	case 8:
		for i := range dst {
			dst[i] = int(raw[i])
		}
	case 16:
		for i := range dst {
			dst[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
		}
	case 24:
		for i := range dst {
			dst[i] = int(goaudio.Int24LETo32(raw[3*i : 3*i+3]))
		}
	case 32:
		for i := range dst {
			dst[i] = int(int32(binary.LittleEndian.Uint32(raw[4*i:])))
		}
	}
}

// Encode is the inverse of Decode: it appends samples to dst in the raw
// layout Decode reads. 8-bit input is expected in [0,255].
func Encode(dst []byte, samples []int, bitDepth int) ([]byte, error) {
	if _, err := MaxAmplitude(bitDepth); err != nil {
		return dst, err
	}

	for _, v := range samples {
		switch bitDepth {
		case 8:
			dst = append(dst, byte(v))
		case 16:
			dst = binary.LittleEndian.AppendUint16(dst, uint16(int16(v)))
		case 24:
			dst = append(dst, goaudio.Int32toInt24LEBytes(int32(v))...)
		case 32:
			dst = binary.LittleEndian.AppendUint32(dst, uint32(int32(v)))
		}
	}

	return dst, nil
}
