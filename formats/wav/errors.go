package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
)
