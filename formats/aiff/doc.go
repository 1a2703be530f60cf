// SPDX-License-Identifier: EPL-2.0

// Package aiff opens AIFF (Audio Interchange File Format) files as
// audio.WaveSource streams.
//
// This package uses github.com/go-audio/aiff to decode AIFF files. AIFF
// stores big-endian signed samples; the whole stream is loaded once and
// re-encoded in the little-endian, offset-binary-for-8-bit layout that
// audio.Decode reads, so WAV and AIFF sources are interchangeable.
//
// # Supported Formats
//
//   - Uncompressed AIFF, 8/16/24/32-bit
//   - Any channel count and sample rate
//
// # Opening AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Open(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close()
//
//	data, ok := source.ReadFrames(0, 1024)
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrUnsupportedAiffLayout: the decoder could not report a format
//   - audio.ErrUnsupportedFormat: unsupported bit depth
package aiff
