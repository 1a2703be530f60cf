package config

import "errors"

var (
	ErrUnknownKey   = errors.New("unknown config key")
	ErrInvalidValue = errors.New("invalid config value")
	ErrInvalidColor = errors.New("invalid color")
)
