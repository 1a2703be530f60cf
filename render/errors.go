package render

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid render config")
	ErrInvalidSize   = errors.New("invalid canvas size")
)
