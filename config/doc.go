// SPDX-License-Identifier: EPL-2.0

// Package config loads scope.conf.
//
// The file is INI with a single [Config] section:
//
//	[Config]
//	scopeartifiacts = False
//	playaudio = True
//	linewidth = 2
//	color = #00ff00
//	wavfile = song.wav
//
// The underscored names (artifact_mode, play_audio, line_width, source)
// are accepted too. Unknown keys and malformed values are errors, so a
// typo never silently falls back to a default.
package config
