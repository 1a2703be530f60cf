// SPDX-License-Identifier: EPL-2.0

// Package wav opens RIFF/WAVE files as seekable audio.WaveSource streams.
//
// It uses github.com/go-audio/wav to walk the RIFF chunks up to the data
// chunk, then serves frames straight from the underlying io.ReadSeeker,
// so random access by frame index costs one seek and one read.
//
// # Supported Formats
//
//   - WAVE_FORMAT_PCM and WAVE_FORMAT_EXTENSIBLE integer PCM
//   - 8-bit (unsigned), 16-bit, 24-bit and 32-bit (signed, little-endian)
//   - Any channel count and sample rate
//
// IEEE float and compressed WAV files fail with audio.ErrUnsupportedFormat.
//
// # Opening WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Open(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer source.Close() // closes file
//
//	data, ok := source.ReadFrames(48000, 1000)
//	if !ok {
//	    // end of stream
//	}
//
// # End of Stream
//
// ReadFrames never returns an error. A start index at or past the end,
// or a failing seek or read on the underlying file, all report ok=false.
// Failures are logged at debug level through Decoder.Logger.
//
// A file whose data chunk header claims more bytes than the file holds is
// served up to its last complete frame.
//
// # Error Handling
//
//   - ErrNotWavFile: the input has no RIFF/WAVE header
//   - ErrUnsupportedWavChunks: no usable fmt or data chunk
//   - audio.ErrUnsupportedFormat: not integer PCM, or an unsupported bit depth
package wav
