// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ik5/audscope/render"
	"gopkg.in/ini.v1"
)

// Section holds every setting.
const Section = "Config"

// DefaultPath is the file read when no -config flag is given.
const DefaultPath = "scope.conf"

// Audio backends.
const (
	BackendMPV = "mpv"
	BackendOto = "oto"
)

// Config holds the resolved runtime configuration.
type Config struct {
	Render render.Config

	// Playback
	PlayAudio    bool
	AudioBackend string

	// Source is the audio file; empty means ask.
	Source string

	// Loop
	SamplesPerFrame int
	TickRate        int // ticks per second

	// Window
	Width  int
	Height int
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Render:          render.DefaultConfig(),
		AudioBackend:    BackendMPV,
		SamplesPerFrame: 1000,
		TickRate:        120,
		Width:           1024,
		Height:          1024,
	}
}

// keys maps every accepted key, legacy spellings included, to its
// canonical name.
var keys = map[string]string{
	"artifact_mode":     "artifact_mode",
	"scopeartifiacts":   "artifact_mode",
	"play_audio":        "play_audio",
	"playaudio":         "play_audio",
	"audio_backend":     "audio_backend",
	"line_width":        "line_width",
	"linewidth":         "line_width",
	"color":             "color",
	"source":            "source",
	"wavfile":           "source",
	"x_channel":         "x_channel",
	"y_channel":         "y_channel",
	"x_invert":          "x_invert",
	"y_invert":          "y_invert",
	"samples_per_frame": "samples_per_frame",
	"tick_rate":         "tick_rate",
	"width":             "width",
	"height":            "height",
}

// Load reads the [Config] section of an INI file. A missing file yields
// Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse reads configuration from INI data. Settings not present keep
// their defaults.
func Parse(data []byte) (Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{Insensitive: true, IgnoreInlineComment: true}, data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	cfg := Default()
	sec := file.Section(Section)

	for _, key := range sec.Keys() {
		name, ok := keys[key.Name()]
		if !ok {
			return Config{}, fmt.Errorf("%w: %q", ErrUnknownKey, key.Name())
		}
		if err := cfg.set(name, key); err != nil {
			return Config{}, fmt.Errorf("%s: %w", key.Name(), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) set(name string, key *ini.Key) error {
	var err error

	switch name {
	case "artifact_mode":
		c.Render.ArtifactMode, err = key.Bool()
	case "play_audio":
		c.PlayAudio, err = key.Bool()
	case "audio_backend":
		c.AudioBackend = strings.ToLower(strings.TrimSpace(key.String()))
	case "line_width":
		c.Render.LineWidth, err = key.Float64()
	case "color":
		c.Render.Color, err = ParseColor(key.String())
		if err != nil {
			return err
		}
	case "source":
		c.Source = strings.TrimSpace(key.String())
	case "x_channel":
		c.Render.XChannel, err = key.Int()
	case "y_channel":
		c.Render.YChannel, err = key.Int()
	case "x_invert":
		c.Render.XInvert, err = key.Int()
	case "y_invert":
		c.Render.YInvert, err = key.Int()
	case "samples_per_frame":
		c.SamplesPerFrame, err = key.Int()
	case "tick_rate":
		c.TickRate, err = key.Int()
	case "width":
		c.Width, err = key.Int()
	case "height":
		c.Height, err = key.Int()
	}

	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidValue, key.String())
	}
	return nil
}

// Validate checks every setting once, before the scope starts.
func (c Config) Validate() error {
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if c.AudioBackend != BackendMPV && c.AudioBackend != BackendOto {
		return fmt.Errorf("%w: audio backend %q", ErrInvalidValue, c.AudioBackend)
	}
	if c.SamplesPerFrame < 1 {
		return fmt.Errorf("%w: samples per frame %d", ErrInvalidValue, c.SamplesPerFrame)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("%w: tick rate %d", ErrInvalidValue, c.TickRate)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidValue, c.Width, c.Height)
	}
	return nil
}
