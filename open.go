package audscope

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audscope/audio"
	"github.com/ik5/audscope/formats/aiff"
	"github.com/ik5/audscope/formats/wav"
)

// ErrUnknownExtension is returned when no decoder is registered for a
// file's extension.
var ErrUnknownExtension = errors.New("unknown file extension")

// NewRegistry returns a registry holding every supported container, keyed
// by lower-case file extension without the dot.
func NewRegistry(logger *slog.Logger) *audio.Registry {
	registry := audio.NewRegistry()
	registry.Register("wav", wav.Decoder{Logger: logger})
	registry.Register("aiff", aiff.Decoder{})
	registry.Register("aif", aiff.Decoder{})

	return registry
}

// OpenFile opens an audio file, picking the decoder by extension.
func OpenFile(path string) (audio.WaveSource, error) {
	return OpenFileWith(NewRegistry(nil), path)
}

// OpenFileWith is OpenFile with a caller-supplied registry. The returned
// source owns the file and closes it on Close.
func OpenFileWith(registry *audio.Registry, path string) (audio.WaveSource, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	opener, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}

	src, err := opener.Open(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return src, nil
}
