package player

import "errors"

var (
	ErrAlreadyStarted = errors.New("player already started")
	ErrNoSource       = errors.New("player has no source")
)
