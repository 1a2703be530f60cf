// SPDX-License-Identifier: EPL-2.0

// Package audio provides the PCM primitives the scope is built on.
//
// This package contains:
//   - WaveFormat, the parameters of a PCM stream
//   - WaveSource, a seekable stream of raw frames
//   - Decode/Encode, the per-bit-depth sample codec
//   - Extract, reducing frames to the two displayed channels
//   - Registry, mapping format keys to openers
//
// # Sample Codec
//
// Raw frames are little-endian and interleaved. Decode turns them into
// one int per sample:
//
//	8-bit   unsigned, [0,255]; subtract Bias8 to centre
//	16-bit  signed
//	24-bit  signed, sign-extended from the top bit of the third byte
//	32-bit  signed
//
// Any other bit depth fails with ErrUnsupportedFormat. NewWaveFormat runs
// the same check, so an opened WaveSource never carries a bad depth.
//
// MaxAmplitude gives the full-scale value per depth:
//
//	8 → 127, 16 → 32767, 24 → 8388607, 32 → 2147483647
//
// # Wave Sources
//
// ReadFrames reports end of stream with ok=false instead of an error:
//
//	data, ok := src.ReadFrames(start, 1000)
//	if !ok {
//	    // past the end, or the file could not be read: stop
//	}
//
// The returned bytes are a whole number of frames, fewer than requested
// near the end of the stream.
//
// # Channel Extraction
//
//	pairs, err := audio.Extract(pairs, data, src.Format(), 1, 0)
//
// Extract reuses the dst slice, drops a trailing partial frame, and
// applies the 8-bit bias, so every Pair is signed whatever the depth.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	opener, _ := registry.Get("wav")
//	src, err := opener.Open(file)
package audio
