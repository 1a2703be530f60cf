// SPDX-License-Identifier: EPL-2.0

// Package audscope renders uncompressed PCM audio as an XY vectorscope.
//
// Two channels of a WAV or AIFF file are mapped to the screen axes and a
// decaying trail is drawn through successive sample pairs, coloured by
// how far the beam jumped. The render position follows a wall clock
// started alongside playback.
//
// # Quick Start
//
//	src, err := audscope.OpenFile("song.wav")
//	if err != nil {
//		return err
//	}
//	defer src.Close()
//
//	fmt.Println(src.Format()) // 48000 Hz, 2 ch, 16-bit
//
// # Packages
//
//   - audio: sample decoding, formats, channel extraction
//   - formats/wav, formats/aiff: container decoders
//   - render: canvas, viewport and the fading trail
//   - scope: clock, frame loop and companion process handling
//   - player: mpv and oto playback
//   - config: scope.conf loading
//
// The cmd/audscope program wires them together.
package audscope
