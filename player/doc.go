// SPDX-License-Identifier: EPL-2.0

// Package player provides the audio playback that runs beside the scope.
//
// Both players implement Start and Terminate and are driven by
// scope.WithProcess:
//
//	// external program, killed on exit
//	p := player.NewMPV("song.wav", logger)
//
//	// in-process through oto
//	p := player.NewOto(func() (audio.WaveSource, error) {
//		return audscope.OpenFile("song.wav")
//	}, 1, 0, logger)
//
// Playback is open loop. Neither player reports its position, and the
// scope follows its own wall clock.
package player
